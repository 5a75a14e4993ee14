// Package lexical implements the hard matcher: term-frequency similarity,
// probabilistic ranking, fuzzy skill overlap, and fuzzy phrase overlap,
// combined with fixed configurable weights.
package lexical

import (
	"math"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"go.uber.org/zap"

	"github.com/jonathan/hirelens/internal/skills"
	"github.com/jonathan/hirelens/internal/textnorm"
	"github.com/jonathan/hirelens/internal/types"
)

// Component names in the lexical MatchResult.
const (
	ComponentTFIDF      = "tfidf"
	ComponentBM25       = "bm25"
	ComponentSkillMatch = "skill_match"
	ComponentFuzzy      = "fuzzy"
)

// Config holds the lexical matcher's weights and limits. All values are
// fixed configuration, injected at construction; they are never derived.
type Config struct {
	TFIDFWeight      float64 `json:"tfidf_weight"`
	BM25Weight       float64 `json:"bm25_weight"`
	SkillMatchWeight float64 `json:"skill_match_weight"`
	FuzzyWeight      float64 `json:"fuzzy_weight"`

	// RequiredSkillWeight and PreferredSkillWeight split the skill overlap
	// component when both categories are non-empty.
	RequiredSkillWeight  float64 `json:"required_skill_weight"`
	PreferredSkillWeight float64 `json:"preferred_skill_weight"`

	// MaxFeatures caps the TF-IDF vocabulary, top terms by corpus frequency.
	MaxFeatures int `json:"max_features"`

	// MaxPhrases caps phrase extraction per document.
	MaxPhrases int `json:"max_phrases"`

	// PhraseMatchThreshold is the minimum token-sort ratio for a phrase pair
	// to count toward the fuzzy component.
	PhraseMatchThreshold int `json:"phrase_match_threshold"`

	// BM25 parameters.
	BM25K1      float64 `json:"bm25_k1"`
	BM25B       float64 `json:"bm25_b"`
	BM25Epsilon float64 `json:"bm25_epsilon"`
}

// DefaultConfig returns the standard lexical matcher configuration.
func DefaultConfig() Config {
	return Config{
		TFIDFWeight:          0.25,
		BM25Weight:           0.25,
		SkillMatchWeight:     0.35,
		FuzzyWeight:          0.15,
		RequiredSkillWeight:  0.7,
		PreferredSkillWeight: 0.3,
		MaxFeatures:          1000,
		MaxPhrases:           50,
		PhraseMatchThreshold: 60,
		BM25K1:               1.5,
		BM25B:                0.75,
		BM25Epsilon:          0.25,
	}
}

// Matcher computes the lexical (hard) match score for a candidate document
// against a target document.
type Matcher struct {
	cfg Config
	log *zap.Logger
}

// NewMatcher creates a lexical matcher. A nil logger disables logging.
func NewMatcher(cfg Config, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{cfg: cfg, log: logger}
}

// Score computes the four lexical component scores and their weighted
// combination. Every component is always present in the result; a component
// that cannot be computed scores 0 rather than reporting an error.
func (m *Matcher) Score(candidate, target types.Document, required, preferred []string) types.MatchResult {
	tfidf := m.tfidfScore(candidate.RawText, target.RawText)
	bm25 := m.bm25Score(candidate.RawText, target.RawText)
	skillMatch := m.skillMatchScore(candidate.Skills, required, preferred)
	phrase := m.phraseScore(candidate.RawText, target.RawText)

	overall := tfidf*m.cfg.TFIDFWeight +
		bm25*m.cfg.BM25Weight +
		skillMatch*m.cfg.SkillMatchWeight +
		phrase*m.cfg.FuzzyWeight

	return types.MatchResult{
		OverallScore: round2(clamp(overall)),
		Components: map[string]types.ComponentScore{
			ComponentTFIDF:      {Name: ComponentTFIDF, Score: round2(tfidf), Weight: m.cfg.TFIDFWeight},
			ComponentBM25:       {Name: ComponentBM25, Score: round2(bm25), Weight: m.cfg.BM25Weight},
			ComponentSkillMatch: {Name: ComponentSkillMatch, Score: round2(skillMatch), Weight: m.cfg.SkillMatchWeight},
			ComponentFuzzy:      {Name: ComponentFuzzy, Score: round2(phrase), Weight: m.cfg.FuzzyWeight},
		},
	}
}

// tfidfScore vectorizes the two documents over a shared unigram+bigram
// vocabulary and returns their cosine similarity scaled to [0,100].
func (m *Matcher) tfidfScore(candidateText, targetText string) float64 {
	candidateVec, targetVec, ok := buildTFIDFVectors(
		textnorm.Normalize(candidateText),
		textnorm.Normalize(targetText),
		m.cfg.MaxFeatures,
	)
	if !ok {
		m.log.Warn("tfidf degraded to 0", zap.String("reason", "empty document after normalization"))
		return 0
	}
	return clamp(cosine(candidateVec, targetVec) * 100)
}

// bm25Score ranks the candidate's tokens against the target within the
// two-document corpus and normalizes by the corpus maximum.
func (m *Matcher) bm25Score(candidateText, targetText string) float64 {
	candidateTokens := textnorm.Tokenize(candidateText)
	targetTokens := textnorm.Tokenize(targetText)
	if len(candidateTokens) == 0 || len(targetTokens) == 0 {
		m.log.Warn("bm25 degraded to 0", zap.String("reason", "empty token stream"))
		return 0
	}

	index := newBM25Index([][]string{candidateTokens, targetTokens}, m.cfg.BM25K1, m.cfg.BM25B, m.cfg.BM25Epsilon)
	scores := index.Scores(candidateTokens)

	maxScore := math.Max(scores[0], scores[1])
	if maxScore <= 0 {
		return 0
	}
	return clamp(scores[1] / maxScore * 100)
}

// skillMatchScore measures fuzzy coverage of the target's required and
// preferred skills by the candidate's skill set, weighted 70/30 when both
// categories are present.
func (m *Matcher) skillMatchScore(candidateSkills, required, preferred []string) float64 {
	candidateSet := skills.NormalizeAll(candidateSkills)
	requiredSet := skills.NormalizeAll(required)
	preferredSet := skills.NormalizeAll(preferred)

	if len(requiredSet) == 0 && len(preferredSet) == 0 {
		return 0
	}

	requiredScore := coverageScore(requiredSet, candidateSet)
	preferredScore := coverageScore(preferredSet, candidateSet)

	var score float64
	switch {
	case len(requiredSet) > 0 && len(preferredSet) > 0:
		score = requiredScore*m.cfg.RequiredSkillWeight + preferredScore*m.cfg.PreferredSkillWeight
	case len(requiredSet) > 0:
		score = requiredScore
	default:
		score = preferredScore
	}

	return clamp(score)
}

// coverageScore returns the percentage of wanted skills present in have.
func coverageScore(wanted, have []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	matches := 0
	for _, skill := range wanted {
		if skills.MatchAny(skill, have) {
			matches++
		}
	}
	return float64(matches) / float64(len(wanted)) * 100
}

// phraseScore extracts short phrases from both documents, finds each target
// phrase's best token-sort match among the candidate's phrases, and averages
// the matches that clear the threshold.
func (m *Matcher) phraseScore(candidateText, targetText string) float64 {
	candidatePhrases := textnorm.ExtractPhrases(candidateText, m.cfg.MaxPhrases)
	targetPhrases := textnorm.ExtractPhrases(targetText, m.cfg.MaxPhrases)
	if len(candidatePhrases) == 0 || len(targetPhrases) == 0 {
		return 0
	}

	total := 0
	matched := 0
	for _, targetPhrase := range targetPhrases {
		best := 0
		for _, candidatePhrase := range candidatePhrases {
			if ratio := fuzzy.TokenSortRatio(targetPhrase, candidatePhrase); ratio > best {
				best = ratio
			}
		}
		if best > m.cfg.PhraseMatchThreshold {
			total += best
			matched++
		}
	}

	if matched == 0 {
		return 0
	}
	return clamp(float64(total) / float64(matched))
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
