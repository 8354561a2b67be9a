// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/giosem1/torch-hypernegative/config"
	"github.com/giosem1/torch-hypernegative/dataset"
	"github.com/giosem1/torch-hypernegative/negative"
	"github.com/giosem1/torch-hypernegative/sampler"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyperneg",
		Short: "Negative sampling for hyperlink prediction",
		Long: `hyperneg loads a hypergraph dataset, generates negative hyperedges,
removes negatives that coincide with positives and balances both classes.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDatasetsCmd(),
		newSampleCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hyperneg version %s\n", version)

			return nil
		},
	}
}

func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List published ARB dataset names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := dataset.KnownDatasets()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(names)
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}

			return nil
		},
	}
}

// sampleSummary is the result of one sample run.
type sampleSummary struct {
	Dataset      string `json:"dataset"`
	Sampler      string `json:"sampler"`
	Nodes        int    `json:"nodes"`
	Positives    int    `json:"positives"`
	RawNegatives int    `json:"raw_negatives"`
	Removed      int    `json:"removed"`
	Cloned       int    `json:"cloned"`
	Negatives    int    `json:"negatives"`
	Stage        string `json:"stage"`
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate, deduplicate and balance negatives for a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			summary, err := runSample(cfg, logger)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			return printSummary(cmd.OutOrStdout(), summary, jsonOut)
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().String("root", "", "Datasets root directory")
	cmd.Flags().String("dataset", "", "Dataset name")
	cmd.Flags().String("sampler", "", "Sampling strategy (sized|uniform)")
	cmd.Flags().Uint64("seed", 0, "Seed for every random draw")
	cmd.Flags().Int("workers", 0, "Deduplication workers")
	cmd.Flags().Int("chunk-size", 0, "Negative edges per deduplication chunk")

	return cmd
}

// resolveConfig loads the config file, if any, and applies explicit flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root, _ = flags.GetString("root")
	}
	if flags.Changed("dataset") {
		cfg.Dataset, _ = flags.GetString("dataset")
	}
	if flags.Changed("sampler") {
		cfg.Sampler.Kind, _ = flags.GetString("sampler")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Sampler.Seed = &seed
	}
	if flags.Changed("workers") {
		cfg.Pipeline.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("chunk-size") {
		cfg.Pipeline.ChunkSize, _ = flags.GetInt("chunk-size")
	}

	return cfg, cfg.Validate()
}

// runSample executes load → fit → transform → clean.
func runSample(cfg config.Config, logger *zap.Logger) (sampleSummary, error) {
	ds, err := dataset.Load(cfg.Root, cfg.Dataset, dataset.WithLogger(logger))
	if err != nil {
		return sampleSummary{}, err
	}
	pos := ds.Table()

	s, err := newSampler(cfg, ds.NumNode(), logger)
	if err != nil {
		return sampleSummary{}, err
	}
	if err := s.Fit(pos); err != nil {
		return sampleSummary{}, err
	}
	sample, err := s.Transform(pos)
	if err != nil {
		return sampleSummary{}, err
	}
	cleaned, err := sample.CleanSample()
	if err != nil {
		return sampleSummary{}, err
	}

	raw, final := sample.Base(), cleaned.Base()
	summary := sampleSummary{
		Dataset:      ds.Name(),
		Sampler:      cfg.Sampler.Kind,
		Nodes:        ds.NumNode(),
		Positives:    final.NumPEdges(),
		RawNegatives: raw.NumNEdges(),
		Removed:      raw.NumNEdges() + final.Added() - final.NumNEdges(),
		Cloned:       final.Added(),
		Negatives:    final.NumNEdges(),
		Stage:        final.Stage().String(),
	}
	logger.Info("sampled negatives",
		zap.String("dataset", summary.Dataset),
		zap.Int("removed", summary.Removed),
		zap.Int("cloned", summary.Cloned),
	)

	return summary, nil
}

// newSampler builds the configured strategy.
func newSampler(cfg config.Config, numNode int, logger *zap.Logger) (sampler.Sampler, error) {
	opts := []sampler.Option{
		sampler.WithAlpha(cfg.Sampler.Alpha),
		sampler.WithDevice(cfg.Sampler.Device),
		sampler.WithLogger(logger),
		sampler.WithResultOptions(
			negative.WithChunkSize(cfg.Pipeline.ChunkSize),
			negative.WithWorkers(cfg.Pipeline.Workers),
			negative.WithLogger(logger),
		),
	}
	if cfg.Sampler.Seed != nil {
		opts = append(opts, sampler.WithSeed(*cfg.Sampler.Seed))
	}

	switch cfg.Sampler.Kind {
	case config.SamplerUniform:
		return sampler.NewUniformSampler(numNode, opts...)
	default:
		return sampler.NewSizedSampler(numNode, opts...)
	}
}

func printSummary(w io.Writer, s sampleSummary, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	fmt.Fprintf(w, "dataset:       %s (%d nodes)\n", s.Dataset, s.Nodes)
	fmt.Fprintf(w, "sampler:       %s\n", s.Sampler)
	fmt.Fprintf(w, "positives:     %d\n", s.Positives)
	fmt.Fprintf(w, "raw negatives: %d\n", s.RawNegatives)
	fmt.Fprintf(w, "removed:       %d\n", s.Removed)
	fmt.Fprintf(w, "cloned:        %d\n", s.Cloned)
	fmt.Fprintf(w, "negatives:     %d (%s)\n", s.Negatives, s.Stage)

	return nil
}
