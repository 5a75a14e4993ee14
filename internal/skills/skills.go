// Package skills implements canonical skill matching: membership in a skill
// set is decided by exact equality, a synonym table, and fuzzy string
// similarity rather than plain set containment.
package skills

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MatchThreshold is the minimum fuzzy ratio (0-100) for two skills to be
// considered the same.
const MatchThreshold = 80

// partialRatioMinLenRatio guards PartialRatio against short-substring false
// positives: "java" scores 100 inside "javascript" but is a different skill.
// PartialRatio only counts when the shorter string is at least this fraction
// of the longer one's length.
const partialRatioMinLenRatio = 0.6

// synonyms maps a canonical skill name to accepted variants. Matching is
// symmetric: either side of an entry matches the other.
var synonyms = map[string][]string{
	"javascript":              {"js", "ecmascript"},
	"python":                  {"py"},
	"c++":                     {"cpp", "c plus plus"},
	"c#":                      {"csharp", "c sharp"},
	"html":                    {"html5"},
	"css":                     {"css3"},
	"react":                   {"reactjs", "react.js"},
	"node.js":                 {"nodejs", "node"},
	"machine learning":        {"ml", "machinelearning"},
	"artificial intelligence": {"ai", "artificialintelligence"},
	"data science":            {"datascience"},
	"web development":         {"webdev"},
	"mobile development":      {"mobiledev"},
}

// Normalize returns the canonical lowercase form of a skill name.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeAll normalizes a list of skill names, dropping empties.
func NormalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Match reports whether two skill names denote the same skill: exact match
// after normalization, synonym-table equivalence, or any fuzzy ratio variant
// at or above MatchThreshold.
func Match(a, b string) bool {
	a, b = Normalize(a), Normalize(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if synonymMatch(a, b) {
		return true
	}

	if fuzzy.Ratio(a, b) >= MatchThreshold {
		return true
	}
	if fuzzy.TokenSortRatio(a, b) >= MatchThreshold {
		return true
	}
	if partialRatioApplicable(a, b) && fuzzy.PartialRatio(a, b) >= MatchThreshold {
		return true
	}

	return false
}

// MatchAny reports whether skill matches any member of set.
func MatchAny(skill string, set []string) bool {
	for _, candidate := range set {
		if Match(skill, candidate) {
			return true
		}
	}
	return false
}

// synonymMatch checks the variants table in both directions.
func synonymMatch(a, b string) bool {
	if variants, ok := synonyms[a]; ok {
		for _, v := range variants {
			if b == v {
				return true
			}
		}
	}
	if variants, ok := synonyms[b]; ok {
		for _, v := range variants {
			if a == v {
				return true
			}
		}
	}
	return false
}

// partialRatioApplicable rejects pairs whose lengths differ enough that a
// substring hit would be meaningless.
func partialRatioApplicable(a, b string) bool {
	shorter, longer := len(a), len(b)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 {
		return false
	}
	return float64(shorter)/float64(longer) >= partialRatioMinLenRatio
}
