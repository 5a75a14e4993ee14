package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/hirelens/internal/config"
	"github.com/jonathan/hirelens/internal/evaluation"
	"github.com/jonathan/hirelens/internal/semantic"
)

// loadEngineConfig loads the optional config file and merges it with the
// engine defaults.
func loadEngineConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	loaded, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	cfg := loaded.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger builds the CLI logger: human-readable in verbose mode,
// errors-only otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return zapCfg.Build()
}

// newEvaluator wires the evaluator with a Gemini embedder from the
// GEMINI_API_KEY environment variable. The returned cleanup closes the
// embedder client.
func newEvaluator(ctx context.Context, cfg config.Config, logger *zap.Logger) (*evaluation.Evaluator, func(), error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	embedder, err := semantic.NewGeminiEmbedder(ctx, apiKey, cfg.EmbeddingModel, cfg.FallbackEmbeddingModel, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	cleanup := func() { _ = embedder.Close() }
	return evaluation.New(cfg, embedder, logger), cleanup, nil
}

// readJSONFile decodes a JSON file into v.
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeJSONOutput marshals v with indentation and writes it to the given
// path, or stdout when the path is empty.
func writeJSONOutput(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
