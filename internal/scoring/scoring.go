// Package scoring aggregates the lexical and semantic match scores into a
// final score, verdict, skill coverage, and matched/missing skill lists.
package scoring

import (
	"math"

	"github.com/jonathan/hirelens/internal/skills"
	"github.com/jonathan/hirelens/internal/types"
)

// Config holds the aggregation weights and verdict thresholds.
type Config struct {
	HardWeight float64 `json:"hard_weight"`
	SoftWeight float64 `json:"soft_weight"`

	// Verdict thresholds, inclusive on the lower bound.
	HighThreshold   float64 `json:"high_threshold"`
	MediumThreshold float64 `json:"medium_threshold"`
}

// DefaultConfig returns the standard aggregation configuration.
func DefaultConfig() Config {
	return Config{
		HardWeight:      0.5,
		SoftWeight:      0.5,
		HighThreshold:   75,
		MediumThreshold: 50,
	}
}

// FinalScore combines the hard and soft match scores into a convex
// combination, renormalizing the weights if they do not sum to 1 and
// falling back to an even split when both are degenerate. The result is
// rounded to two decimals.
func FinalScore(hard, soft, hardWeight, softWeight float64) float64 {
	total := hardWeight + softWeight
	if total > 0 {
		hardWeight /= total
		softWeight /= total
	} else {
		hardWeight, softWeight = 0.5, 0.5
	}
	return Round2(hard*hardWeight + soft*softWeight)
}

// Verdict discretizes a final score: High at or above HighThreshold, Medium
// at or above MediumThreshold, Low otherwise.
func (c Config) Verdict(finalScore float64) types.Verdict {
	switch {
	case finalScore >= c.HighThreshold:
		return types.VerdictHigh
	case finalScore >= c.MediumThreshold:
		return types.VerdictMedium
	default:
		return types.VerdictLow
	}
}

// Coverage reports how much of the target's skill demand the candidate
// covers, per category and overall.
type Coverage struct {
	Required  float64 `json:"required_coverage"`
	Preferred float64 `json:"preferred_coverage"`
	Overall   float64 `json:"overall_coverage"`

	RequiredMatches  int `json:"required_matches"`
	PreferredMatches int `json:"preferred_matches"`
}

// SkillCoverage computes per-category and overall coverage percentages. A
// category with no target skills contributes 0 to its own coverage and is
// excluded from the overall denominator; a fully empty target yields 0
// everywhere, never a division by zero.
func SkillCoverage(candidateSkills, required, preferred []string) Coverage {
	candidateSet := skills.NormalizeAll(candidateSkills)
	requiredSet := skills.NormalizeAll(required)
	preferredSet := skills.NormalizeAll(preferred)

	cov := Coverage{}
	for _, skill := range requiredSet {
		if skills.MatchAny(skill, candidateSet) {
			cov.RequiredMatches++
		}
	}
	for _, skill := range preferredSet {
		if skills.MatchAny(skill, candidateSet) {
			cov.PreferredMatches++
		}
	}

	if len(requiredSet) > 0 {
		cov.Required = Round2(float64(cov.RequiredMatches) / float64(len(requiredSet)) * 100)
	}
	if len(preferredSet) > 0 {
		cov.Preferred = Round2(float64(cov.PreferredMatches) / float64(len(preferredSet)) * 100)
	}

	total := len(requiredSet) + len(preferredSet)
	if total > 0 {
		matches := cov.RequiredMatches + cov.PreferredMatches
		cov.Overall = Round2(float64(matches) / float64(total) * 100)
	}

	return cov
}

// MatchedAndMissing partitions the target's required and preferred skills
// into those the candidate covers and those it lacks, using the same fuzzy
// membership rule as the skill overlap component. The union of the two
// lists is exactly the deduplicated required+preferred set, in input order
// with original casing preserved; every skill appears in exactly one list.
func MatchedAndMissing(candidateSkills, required, preferred []string) (matched, missing []string) {
	candidateSet := skills.NormalizeAll(candidateSkills)

	matched = []string{}
	missing = []string{}
	seen := make(map[string]bool)
	for _, skill := range append(append([]string{}, required...), preferred...) {
		normalized := skills.Normalize(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		if skills.MatchAny(normalized, candidateSet) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	return matched, missing
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
