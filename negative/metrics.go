// SPDX-License-Identifier: MIT
package negative

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "hypernegative"
	subsystem        = "negative"
)

var (
	// RemovedTotal counts negative hyperedges dropped for matching a positive.
	RemovedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "removed_total",
			Help:      "Total number of negative hyperedges equal to a positive hyperedge",
		},
	)

	// ClonedTotal counts negative hyperedges appended by oversampling.
	ClonedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "cloned_total",
			Help:      "Total number of negative hyperedges duplicated to balance classes",
		},
	)

	// CapacityErrorsTotal counts balancing attempts with nothing to clone.
	CapacityErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "capacity_errors_total",
			Help:      "Total number of oversample calls without any negative edge",
		},
	)

	// CleanDuration observes a full dedup + balance run.
	CleanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: subsystem,
			Name:      "clean_duration_seconds",
			Help:      "Time taken to deduplicate and balance one sample result",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"status"}, // success, error
	)
)
