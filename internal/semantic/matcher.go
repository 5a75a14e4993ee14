package semantic

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/jonathan/hirelens/internal/skills"
	"github.com/jonathan/hirelens/internal/textnorm"
	"github.com/jonathan/hirelens/internal/types"
)

// Component names in the semantic MatchResult.
const (
	ComponentText    = "text_similarity"
	ComponentSkill   = "skill_similarity"
	ComponentContext = "context_similarity"
)

// Config holds the semantic matcher's weights and limits.
type Config struct {
	TextWeight    float64 `json:"text_weight"`
	SkillWeight   float64 `json:"skill_weight"`
	ContextWeight float64 `json:"context_weight"`

	RequiredSkillWeight  float64 `json:"required_skill_weight"`
	PreferredSkillWeight float64 `json:"preferred_skill_weight"`

	// MinSectionLength and MaxSections bound the paragraphs considered for
	// context similarity.
	MinSectionLength int `json:"min_section_length"`
	MaxSections      int `json:"max_sections"`
}

// DefaultConfig returns the standard semantic matcher configuration.
func DefaultConfig() Config {
	return Config{
		TextWeight:           0.4,
		SkillWeight:          0.4,
		ContextWeight:        0.2,
		RequiredSkillWeight:  0.7,
		PreferredSkillWeight: 0.3,
		MinSectionLength:     50,
		MaxSections:          10,
	}
}

// Matcher computes the semantic (soft) match score for a candidate document
// against a target document using an injected embedding capability.
type Matcher struct {
	cfg      Config
	embedder Embedder
	log      *zap.Logger
}

// NewMatcher creates a semantic matcher. A nil logger disables logging.
func NewMatcher(cfg Config, embedder Embedder, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{cfg: cfg, embedder: embedder, log: logger}
}

// Score computes the three semantic component scores and their weighted
// combination. Degenerate inputs (empty text, empty skill lists) degrade the
// affected component to 0. The only returned error is ErrModelUnavailable,
// raised when the embedding capability cannot be reached at all; the caller
// is expected to degrade the whole semantic score to 0.
func (m *Matcher) Score(ctx context.Context, candidate, target types.Document, required, preferred []string) (types.MatchResult, error) {
	textScore, err := m.textSimilarity(ctx, candidate.RawText, target.RawText)
	if err != nil {
		return types.MatchResult{}, err
	}
	skillScore, err := m.skillSimilarity(ctx, candidate.Skills, required, preferred)
	if err != nil {
		return types.MatchResult{}, err
	}
	contextScore, err := m.contextSimilarity(ctx, candidate.RawText, target.RawText)
	if err != nil {
		return types.MatchResult{}, err
	}

	overall := textScore*m.cfg.TextWeight +
		skillScore*m.cfg.SkillWeight +
		contextScore*m.cfg.ContextWeight

	return types.MatchResult{
		OverallScore: round2(clamp(overall)),
		Components: map[string]types.ComponentScore{
			ComponentText:    {Name: ComponentText, Score: round2(textScore), Weight: m.cfg.TextWeight},
			ComponentSkill:   {Name: ComponentSkill, Score: round2(skillScore), Weight: m.cfg.SkillWeight},
			ComponentContext: {Name: ComponentContext, Score: round2(contextScore), Weight: m.cfg.ContextWeight},
		},
	}, nil
}

// textSimilarity is the cosine similarity of the two whole-text embeddings,
// scaled to [0,100].
func (m *Matcher) textSimilarity(ctx context.Context, candidateText, targetText string) (float64, error) {
	if candidateText == "" || targetText == "" {
		return 0, nil
	}

	candidateVec, err := m.embedder.Embed(ctx, candidateText)
	if err != nil {
		return 0, m.classify("text_similarity", err)
	}
	targetVec, err := m.embedder.Embed(ctx, targetText)
	if err != nil {
		return 0, m.classify("text_similarity", err)
	}

	return clamp(cosine32(candidateVec, targetVec) * 100), nil
}

// skillSimilarity embeds every candidate and target skill, takes each target
// skill's best similarity to any candidate skill, and combines the required
// and preferred means 70/30. When only one category is present its mean is
// used alone.
func (m *Matcher) skillSimilarity(ctx context.Context, candidateSkills, required, preferred []string) (float64, error) {
	candidateSet := skills.NormalizeAll(candidateSkills)
	requiredSet := skills.NormalizeAll(required)
	preferredSet := skills.NormalizeAll(preferred)

	targetSet := append(append([]string{}, requiredSet...), preferredSet...)
	if len(candidateSet) == 0 || len(targetSet) == 0 {
		return 0, nil
	}

	candidateVecs, err := m.embedAll(ctx, candidateSet)
	if err != nil {
		return 0, m.classify("skill_similarity", err)
	}
	targetVecs, err := m.embedAll(ctx, targetSet)
	if err != nil {
		return 0, m.classify("skill_similarity", err)
	}

	// Best candidate match per target skill.
	maxima := make([]float64, len(targetVecs))
	for i, targetVec := range targetVecs {
		best := 0.0
		for _, candidateVec := range candidateVecs {
			if sim := cosine32(candidateVec, targetVec); sim > best {
				best = sim
			}
		}
		maxima[i] = best
	}

	var score float64
	if len(requiredSet) > 0 && len(preferredSet) > 0 {
		score = mean(maxima[:len(requiredSet)])*m.cfg.RequiredSkillWeight +
			mean(maxima[len(requiredSet):])*m.cfg.PreferredSkillWeight
	} else {
		score = mean(maxima)
	}

	return clamp(score * 100), nil
}

// contextSimilarity compares relevant sections of the two documents: for
// each target section, the best embedding similarity against any candidate
// section, averaged across target sections.
func (m *Matcher) contextSimilarity(ctx context.Context, candidateText, targetText string) (float64, error) {
	candidateSections := textnorm.ExtractSections(candidateText, m.cfg.MinSectionLength, m.cfg.MaxSections)
	targetSections := textnorm.ExtractSections(targetText, m.cfg.MinSectionLength, m.cfg.MaxSections)
	if len(candidateSections) == 0 || len(targetSections) == 0 {
		return 0, nil
	}

	candidateVecs, err := m.embedAll(ctx, candidateSections)
	if err != nil {
		return 0, m.classify("context_similarity", err)
	}
	targetVecs, err := m.embedAll(ctx, targetSections)
	if err != nil {
		return 0, m.classify("context_similarity", err)
	}

	similarities := make([]float64, len(targetVecs))
	for i, targetVec := range targetVecs {
		best := 0.0
		for _, candidateVec := range candidateVecs {
			if sim := cosine32(candidateVec, targetVec); sim > best {
				best = sim
			}
		}
		similarities[i] = best
	}

	return clamp(mean(similarities) * 100), nil
}

// embedAll embeds a list of texts one by one.
func (m *Matcher) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := m.embedder.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vecs[i] = vec
	}
	return vecs, nil
}

// classify logs a component failure and passes ErrModelUnavailable through.
// Context cancellation propagates unchanged so callers do not mistake it for
// a model outage; any other embedder error is wrapped so the caller still
// sees the sentinel.
func (m *Matcher) classify(component string, err error) error {
	m.log.Warn("semantic component failed", zap.String("component", component), zap.Error(err))
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, ErrModelUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
}

// cosine32 returns the cosine similarity of two embedding vectors; a
// zero-norm vector yields 0, never a division error.
func cosine32(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// clamp bounds a score to [0,100].
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
