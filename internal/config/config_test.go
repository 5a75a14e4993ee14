package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ReadsJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"scoring": {"hard_weight": 0.6, "soft_weight": 0.4, "high_threshold": 80, "medium_threshold": 55},
		"embedding_model": "text-embedding-004",
		"workers": 4
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.Scoring.HardWeight)
	assert.Equal(t, 0.4, cfg.Scoring.SoftWeight)
	assert.Equal(t, 80.0, cfg.Scoring.HighThreshold)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_RejectsNegativeWeight(t *testing.T) {
	cfg := Default()
	cfg.Lexical.TFIDFWeight = -0.1

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tfidf_weight")
}

func TestValidate_RejectsAllZeroScoringWeights(t *testing.T) {
	cfg := Default()
	cfg.Scoring.HardWeight = 0
	cfg.Scoring.SoftWeight = 0

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsInvertedThresholds(t *testing.T) {
	cfg := Default()
	cfg.Scoring.HighThreshold = 40
	cfg.Scoring.MediumThreshold = 60

	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNegativeWorkers(t *testing.T) {
	cfg := Default()
	cfg.Workers = -1

	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsZeroValues(t *testing.T) {
	var cfg Config

	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, Default(), merged)
}

func TestMergeWithDefaults_KeepsExplicitGroups(t *testing.T) {
	cfg := Config{}
	cfg.Scoring.HardWeight = 0.8
	cfg.Scoring.SoftWeight = 0.2
	cfg.Scoring.HighThreshold = 90
	cfg.Scoring.MediumThreshold = 60

	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, 0.8, merged.Scoring.HardWeight)
	assert.Equal(t, 90.0, merged.Scoring.HighThreshold)
	assert.Equal(t, Default().Lexical, merged.Lexical)
	assert.Equal(t, Default().Semantic, merged.Semantic)
	assert.Equal(t, DefaultEmbeddingModel, merged.EmbeddingModel)
}
