// SPDX-License-Identifier: MIT
// Package config — YAML configuration for the hyperneg command and the logger
// built from it.
//
// A config file only needs the keys it changes; Load starts from Default and
// decodes on top of it. Unknown keys are rejected.
//
//	root: datasets
//	dataset: email-Enron
//	sampler:
//	  kind: sized
//	  alpha: 1
//	  seed: 42
//	pipeline:
//	  chunk_size: 65536
//	  workers: 4
//	log:
//	  level: info
//	  development: false

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/giosem1/torch-hypernegative/negative"
	"github.com/giosem1/torch-hypernegative/sampler"
)

// ErrInvalidConfig indicates a config value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Sampler kinds.
const (
	SamplerSized   = "sized"
	SamplerUniform = "uniform"
)

// Config is the full hyperneg configuration.
type Config struct {
	Root     string         `yaml:"root"`
	Dataset  string         `yaml:"dataset"`
	Sampler  SamplerConfig  `yaml:"sampler"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// SamplerConfig selects and tunes the negative sampling strategy.
type SamplerConfig struct {
	Kind   string  `yaml:"kind"`
	Alpha  float64 `yaml:"alpha"`
	Seed   *uint64 `yaml:"seed"` // nil draws a random seed
	Device string  `yaml:"device"`
}

// PipelineConfig tunes deduplication.
type PipelineConfig struct {
	ChunkSize int `yaml:"chunk_size"`
	Workers   int `yaml:"workers"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Root:    "datasets",
		Dataset: "email-Enron",
		Sampler: SamplerConfig{
			Kind:   SamplerSized,
			Alpha:  sampler.DefaultAlpha,
			Device: negative.DefaultDevice,
		},
		Pipeline: PipelineConfig{
			ChunkSize: negative.DefaultChunkSize,
			Workers:   negative.DefaultWorkers,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
// Errors: os errors, yaml errors, ErrInvalidConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("Load: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	switch {
	case c.Dataset == "":
		return fmt.Errorf("Validate: dataset is empty: %w", ErrInvalidConfig)
	case c.Sampler.Kind != SamplerSized && c.Sampler.Kind != SamplerUniform:
		return fmt.Errorf("Validate: sampler.kind=%q: %w", c.Sampler.Kind, ErrInvalidConfig)
	case c.Sampler.Alpha < 0:
		return fmt.Errorf("Validate: sampler.alpha=%v: %w", c.Sampler.Alpha, ErrInvalidConfig)
	case c.Pipeline.ChunkSize <= 0:
		return fmt.Errorf("Validate: pipeline.chunk_size=%d: %w", c.Pipeline.ChunkSize, ErrInvalidConfig)
	case c.Pipeline.Workers <= 0:
		return fmt.Errorf("Validate: pipeline.workers=%d: %w", c.Pipeline.Workers, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("Validate: log.level=%q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return nil
}

// NewLogger builds a production JSON logger, or a development console logger,
// at the configured level.
func NewLogger(lc LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("NewLogger: level %q: %w", lc.Level, ErrInvalidConfig)
	}

	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
