// Package config provides configuration loading and validation for the
// matching engine and CLI. All weights and thresholds live here as explicit,
// injectable values; nothing reads hidden globals.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/hirelens/internal/lexical"
	"github.com/jonathan/hirelens/internal/scoring"
	"github.com/jonathan/hirelens/internal/semantic"
)

// Default embedding models, mirroring the primary/fallback pair the engine
// was tuned against.
const (
	DefaultEmbeddingModel         = "text-embedding-004"
	DefaultFallbackEmbeddingModel = "embedding-001"
)

// Config is the full engine configuration. Zero values in a loaded config
// are filled from Default via MergeWithDefaults.
type Config struct {
	Lexical  lexical.Config  `json:"lexical"`
	Semantic semantic.Config `json:"semantic"`
	Scoring  scoring.Config  `json:"scoring"`

	// EmbeddingModel and FallbackEmbeddingModel name the Gemini embedding
	// models used by the semantic matcher.
	EmbeddingModel         string `json:"embedding_model,omitempty"`
	FallbackEmbeddingModel string `json:"fallback_embedding_model,omitempty"`

	// Workers bounds batch evaluation parallelism. 0 means one worker per CPU.
	Workers int `json:"workers,omitempty"`
}

// Default returns the standard engine configuration.
func Default() Config {
	return Config{
		Lexical:                lexical.DefaultConfig(),
		Semantic:               semantic.DefaultConfig(),
		Scoring:                scoring.DefaultConfig(),
		EmbeddingModel:         DefaultEmbeddingModel,
		FallbackEmbeddingModel: DefaultFallbackEmbeddingModel,
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	for name, w := range map[string]float64{
		"lexical.tfidf_weight":       c.Lexical.TFIDFWeight,
		"lexical.bm25_weight":        c.Lexical.BM25Weight,
		"lexical.skill_match_weight": c.Lexical.SkillMatchWeight,
		"lexical.fuzzy_weight":       c.Lexical.FuzzyWeight,
		"semantic.text_weight":       c.Semantic.TextWeight,
		"semantic.skill_weight":      c.Semantic.SkillWeight,
		"semantic.context_weight":    c.Semantic.ContextWeight,
		"scoring.hard_weight":        c.Scoring.HardWeight,
		"scoring.soft_weight":        c.Scoring.SoftWeight,
	} {
		if w < 0 {
			return fmt.Errorf("config error: %s must be non-negative", name)
		}
	}

	if c.Scoring.HardWeight+c.Scoring.SoftWeight <= 0 {
		return fmt.Errorf("config error: scoring weights must not both be zero")
	}
	if c.Scoring.HighThreshold < c.Scoring.MediumThreshold {
		return fmt.Errorf("config error: high_threshold must be at or above medium_threshold")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: workers must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. Weight groups are merged as a whole: a config that specifies any
// lexical weight is taken as-is for that group, so partial weight sets do
// not silently mix with defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Lexical == (lexical.Config{}) {
		result.Lexical = defaults.Lexical
	}
	if result.Semantic == (semantic.Config{}) {
		result.Semantic = defaults.Semantic
	}
	if result.Scoring == (scoring.Config{}) {
		result.Scoring = defaults.Scoring
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.FallbackEmbeddingModel == "" {
		result.FallbackEmbeddingModel = defaults.FallbackEmbeddingModel
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	return result
}
