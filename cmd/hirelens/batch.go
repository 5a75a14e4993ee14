package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hirelens/internal/evaluation"
	"github.com/jonathan/hirelens/internal/observability"
	"github.com/jonathan/hirelens/internal/types"
	"github.com/jonathan/hirelens/schemas"
)

var (
	batchInputPath  string
	batchOutputPath string
	batchConfigPath string
	batchWorkers    int
	batchVerbose    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a batch of candidate documents against one target",
	Long: `Evaluate many candidate documents against a single target job
description. The input file holds the target spec and the candidate list and
is validated against the engine's input schema before evaluation. The output
is a JSON array with exactly one result per candidate, in input order; a
failed candidate produces an Error row, never a failed batch.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchInputPath, "input", "", "Path to batch input JSON (required)")
	batchCmd.Flags().StringVar(&batchOutputPath, "output", "", "Write the results JSON to this path instead of stdout")
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to engine config JSON")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Maximum parallel evaluations (0 = one per CPU)")
	batchCmd.Flags().BoolVar(&batchVerbose, "verbose", false, "Print detailed debug information")
	_ = batchCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(batchConfigPath)
	if err != nil {
		return fmt.Errorf("loading config failed: %w", err)
	}
	if batchWorkers > 0 {
		cfg.Workers = batchWorkers
	}

	logger, err := newLogger(batchVerbose)
	if err != nil {
		return fmt.Errorf("creating logger failed: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(batchInputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", batchInputPath, err)
	}
	if err := schemas.ValidateEvaluationInput(string(data)); err != nil {
		return fmt.Errorf("input file %s is invalid: %w", batchInputPath, err)
	}

	var input types.BatchInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse %s: %w", batchInputPath, err)
	}

	evaluator, cleanup, err := newEvaluator(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	results := evaluator.EvaluateBatch(cmd.Context(), input.Candidates, input.Target)

	if batchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		summary := evaluation.Summarize(results)
		printer.PrintBatchSummary(&summary)
	}

	return writeJSONOutput(batchOutputPath, results)
}
