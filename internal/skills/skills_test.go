package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_TrimsAndLowercases(t *testing.T) {
	assert.Equal(t, "python", Normalize("  Python "))
	assert.Equal(t, "node.js", Normalize("Node.js"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNormalizeAll_DropsEmpties(t *testing.T) {
	got := NormalizeAll([]string{"Python", "  ", "React", ""})
	assert.Equal(t, []string{"python", "react"}, got)
}

func TestMatch_ExactAfterNormalization(t *testing.T) {
	assert.True(t, Match("Python", "python"))
	assert.True(t, Match(" Go ", "go"))
}

func TestMatch_SynonymTable(t *testing.T) {
	assert.True(t, Match("JavaScript", "js"))
	assert.True(t, Match("js", "JavaScript"))
	assert.True(t, Match("ML", "Machine Learning"))
	assert.True(t, Match("node", "Node.js"))
	assert.True(t, Match("cpp", "C++"))
}

func TestMatch_FuzzyTypo(t *testing.T) {
	assert.True(t, Match("PostgreSQL", "postgres"))
}

func TestMatch_TokenOrderInsensitive(t *testing.T) {
	assert.True(t, Match("learning machine", "machine learning"))
}

func TestMatch_JavaIsNotJavaScript(t *testing.T) {
	// "java" is a perfect substring of "javascript" but a different skill;
	// the length guard must keep PartialRatio from conflating them.
	assert.False(t, Match("Java", "JavaScript"))
	assert.False(t, Match("javascript", "java"))
}

func TestMatch_UnrelatedSkills(t *testing.T) {
	assert.False(t, Match("Python", "Kubernetes"))
	assert.False(t, Match("React", "Docker"))
}

func TestMatch_EmptyInput(t *testing.T) {
	assert.False(t, Match("", "python"))
	assert.False(t, Match("python", ""))
	assert.False(t, Match("", ""))
}

func TestMatchAny_FindsMatchInSet(t *testing.T) {
	set := []string{"python", "django", "postgresql"}
	assert.True(t, MatchAny("Py", set))
	assert.True(t, MatchAny("django", set))
	assert.False(t, MatchAny("rust", set))
	assert.False(t, MatchAny("python", nil))
}
