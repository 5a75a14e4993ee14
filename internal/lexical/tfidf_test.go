package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTFIDFVectors_IdenticalDocuments(t *testing.T) {
	text := "python developer building django services"
	candidate, target, ok := buildTFIDFVectors(text, text, 1000)

	require.True(t, ok)
	assert.InDelta(t, 1.0, cosine(candidate, target), 1e-9)
}

func TestBuildTFIDFVectors_DisjointDocuments(t *testing.T) {
	candidate, target, ok := buildTFIDFVectors("quantum physics research", "grilled cheese sandwich", 1000)

	require.True(t, ok)
	assert.InDelta(t, 0.0, cosine(candidate, target), 1e-9)
}

func TestBuildTFIDFVectors_EmptyDocument(t *testing.T) {
	_, _, ok := buildTFIDFVectors("", "python developer", 1000)
	assert.False(t, ok)

	_, _, ok = buildTFIDFVectors("python developer", "", 1000)
	assert.False(t, ok)
}

func TestBuildTFIDFVectors_StopWordsOnlyDocument(t *testing.T) {
	_, _, ok := buildTFIDFVectors("the and of with", "python developer", 1000)
	assert.False(t, ok)
}

func TestNgramTerms_UnigramsAndBigrams(t *testing.T) {
	terms := ngramTerms("python backend developer")

	assert.Equal(t, 1, terms["python"])
	assert.Equal(t, 1, terms["backend"])
	assert.Equal(t, 1, terms["developer"])
	assert.Equal(t, 1, terms["python backend"])
	assert.Equal(t, 1, terms["backend developer"])
	assert.NotContains(t, terms, "python developer")
}

func TestNgramTerms_StopWordsRemovedBeforeBigrams(t *testing.T) {
	terms := ngramTerms("python for the developer")

	// Bigrams form over the content tokens that remain.
	assert.Equal(t, 1, terms["python developer"])
	assert.NotContains(t, terms, "python for")
	assert.NotContains(t, terms, "the developer")
}

func TestSelectVocabulary_CapsAtMaxFeatures(t *testing.T) {
	candidateTerms := map[string]int{"python": 5, "django": 3, "flask": 1}
	targetTerms := map[string]int{"python": 4, "react": 2}

	vocabulary := selectVocabulary(candidateTerms, targetTerms, 2)

	assert.Equal(t, []string{"python", "django"}, vocabulary)
}

func TestSelectVocabulary_AlphabeticalTiebreak(t *testing.T) {
	candidateTerms := map[string]int{"zeta": 1, "alpha": 1}
	targetTerms := map[string]int{}

	vocabulary := selectVocabulary(candidateTerms, targetTerms, 10)

	assert.Equal(t, []string{"alpha", "zeta"}, vocabulary)
}

func TestCosine_ZeroVector(t *testing.T) {
	assert.Equal(t, 0.0, cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestCosine_MismatchedLengths(t *testing.T) {
	assert.Equal(t, 0.0, cosine([]float64{1}, []float64{1, 1}))
	assert.Equal(t, 0.0, cosine(nil, nil))
}
