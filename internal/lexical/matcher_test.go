package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hirelens/internal/types"
)

func newTestMatcher() *Matcher {
	return NewMatcher(DefaultConfig(), nil)
}

func TestScore_IdenticalDocuments(t *testing.T) {
	doc := types.Document{
		RawText: "Senior Python developer building Django services and REST APIs.",
		Skills:  []string{"Python", "Django"},
	}

	result := newTestMatcher().Score(doc, doc, []string{"Python", "Django"}, nil)

	assert.InDelta(t, 100.0, result.Component(ComponentTFIDF).Score, 0.01)
	assert.InDelta(t, 100.0, result.Component(ComponentSkillMatch).Score, 0.01)
	assert.InDelta(t, 100.0, result.Component(ComponentFuzzy).Score, 0.01)
	assert.GreaterOrEqual(t, result.OverallScore, 70.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
}

func TestScore_EmptyCandidate(t *testing.T) {
	target := types.Document{RawText: "Python developer with Django experience."}

	result := newTestMatcher().Score(types.Document{}, target, []string{"python"}, nil)

	assert.Equal(t, 0.0, result.OverallScore)
	for _, name := range []string{ComponentTFIDF, ComponentBM25, ComponentSkillMatch, ComponentFuzzy} {
		assert.Equal(t, 0.0, result.Component(name).Score, name)
	}
}

func TestScore_AllComponentsPresentWithWeights(t *testing.T) {
	candidate := types.Document{RawText: "Backend engineer, Go and PostgreSQL.", Skills: []string{"Go"}}
	target := types.Document{RawText: "Looking for a Go backend engineer."}

	result := newTestMatcher().Score(candidate, target, []string{"Go"}, []string{"PostgreSQL"})

	require.Len(t, result.Components, 4)
	assert.Equal(t, 0.25, result.Component(ComponentTFIDF).Weight)
	assert.Equal(t, 0.25, result.Component(ComponentBM25).Weight)
	assert.Equal(t, 0.35, result.Component(ComponentSkillMatch).Weight)
	assert.Equal(t, 0.15, result.Component(ComponentFuzzy).Weight)

	for name, component := range result.Components {
		assert.GreaterOrEqual(t, component.Score, 0.0, name)
		assert.LessOrEqual(t, component.Score, 100.0, name)
	}
	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
}

func TestScore_Deterministic(t *testing.T) {
	candidate := types.Document{
		RawText: "Five years of experience building data pipelines in Python and Spark.",
		Skills:  []string{"Python", "Spark", "Airflow"},
	}
	target := types.Document{
		RawText: "We need a data engineer with Python and Spark experience.",
	}
	required := []string{"Python", "Spark"}
	preferred := []string{"Kafka"}

	m := newTestMatcher()
	first := m.Score(candidate, target, required, preferred)
	second := m.Score(candidate, target, required, preferred)

	assert.Equal(t, first, second)
}

func TestSkillMatchScore_WeightedSplit(t *testing.T) {
	m := newTestMatcher()

	// Required coverage 1/2 = 50, preferred coverage 1/1 = 100.
	score := m.skillMatchScore(
		[]string{"Python", "React"},
		[]string{"Python", "Django"},
		[]string{"React"},
	)

	assert.InDelta(t, 0.7*50+0.3*100, score, 1e-9)
}

func TestSkillMatchScore_RequiredOnly(t *testing.T) {
	m := newTestMatcher()

	score := m.skillMatchScore([]string{"python"}, []string{"python", "django"}, nil)

	assert.InDelta(t, 50.0, score, 1e-9)
}

func TestSkillMatchScore_PreferredOnly(t *testing.T) {
	m := newTestMatcher()

	score := m.skillMatchScore([]string{"react"}, nil, []string{"react"})

	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestSkillMatchScore_NoTargetSkills(t *testing.T) {
	m := newTestMatcher()
	assert.Equal(t, 0.0, m.skillMatchScore([]string{"python"}, nil, nil))
}

func TestSkillMatchScore_FuzzyAndSynonymCoverage(t *testing.T) {
	m := newTestMatcher()

	score := m.skillMatchScore([]string{"JS", "postgres"}, []string{"JavaScript", "PostgreSQL"}, nil)

	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestPhraseScore_OverlappingTexts(t *testing.T) {
	m := newTestMatcher()

	score := m.phraseScore(
		"Built scalable microservices in production environments.",
		"Built scalable microservices for enterprise clients.",
	)

	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestPhraseScore_DisjointTexts(t *testing.T) {
	m := newTestMatcher()

	score := m.phraseScore(
		"quantum entanglement research laboratory publications",
		"grilled sandwich lunch menu specials",
	)

	assert.Equal(t, 0.0, score)
}

func TestBM25Score_EmptyInput(t *testing.T) {
	m := newTestMatcher()
	assert.Equal(t, 0.0, m.bm25Score("", "python developer"))
	assert.Equal(t, 0.0, m.bm25Score("python developer", ""))
}

func TestClamp_Bounds(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-5))
	assert.Equal(t, 100.0, clamp(150))
	assert.Equal(t, 42.5, clamp(42.5))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, round2(66.66666))
	assert.Equal(t, 50.0, round2(50))
}
