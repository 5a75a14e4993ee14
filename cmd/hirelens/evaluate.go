package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hirelens/internal/observability"
	"github.com/jonathan/hirelens/internal/types"
)

var (
	evaluateCandidatePath string
	evaluateTargetPath    string
	evaluateConfigPath    string
	evaluateOutputPath    string
	evaluateVerbose       bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score one candidate document against a target",
	Long: `Evaluate a single candidate document against a target job description.
Both inputs are JSON files in the engine's document contract: the candidate
is a document ({"raw_text": ..., "skills": [...]}), the target additionally
carries required_skills and preferred_skills.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evaluateCandidatePath, "candidate", "", "Path to candidate document JSON (required)")
	evaluateCmd.Flags().StringVar(&evaluateTargetPath, "target", "", "Path to target spec JSON (required)")
	evaluateCmd.Flags().StringVar(&evaluateConfigPath, "config", "", "Path to engine config JSON")
	evaluateCmd.Flags().StringVar(&evaluateOutputPath, "output", "", "Write the result JSON to this path instead of stdout")
	evaluateCmd.Flags().BoolVar(&evaluateVerbose, "verbose", false, "Print detailed debug information")
	_ = evaluateCmd.MarkFlagRequired("candidate")
	_ = evaluateCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(evaluateConfigPath)
	if err != nil {
		return fmt.Errorf("loading config failed: %w", err)
	}

	logger, err := newLogger(evaluateVerbose)
	if err != nil {
		return fmt.Errorf("creating logger failed: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var candidate types.Document
	if err := readJSONFile(evaluateCandidatePath, &candidate); err != nil {
		return err
	}
	var target types.TargetSpec
	if err := readJSONFile(evaluateTargetPath, &target); err != nil {
		return err
	}

	evaluator, cleanup, err := newEvaluator(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	result := evaluator.Evaluate(cmd.Context(), candidate, target)

	if evaluateVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintEvaluationResult(&result)
	}

	return writeJSONOutput(evaluateOutputPath, result)
}
