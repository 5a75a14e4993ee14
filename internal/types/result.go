package types

// Verdict is the discretized outcome of an evaluation.
type Verdict string

// Verdict values. Error is reserved for total evaluation failures; a
// degraded semantic score alone never produces it.
const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
	VerdictError  Verdict = "Error"
)

// ComponentScore is one named signal inside a match result, together with
// the weight applied to it when combining. Score is always in [0,100]; a
// component that fails internally degrades to 0 rather than being omitted.
type ComponentScore struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// MatchResult is the output of one matcher (lexical or semantic) for a
// single (candidate, target) pair.
type MatchResult struct {
	OverallScore float64                   `json:"overall_score"`
	Components   map[string]ComponentScore `json:"component_scores"`
}

// Component returns the named component score, or a zero ComponentScore
// when the matcher never produced it.
func (r MatchResult) Component(name string) ComponentScore {
	if cs, ok := r.Components[name]; ok {
		return cs
	}
	return ComponentScore{Name: name}
}

// EvaluationResult is the immutable record produced for one
// (candidate, target) evaluation. MatchedSkills and MissingSkills together
// partition the target's required and preferred skills; they are never nil
// so that they serialize as [] rather than null.
type EvaluationResult struct {
	FinalScore     float64  `json:"final_score"`
	Verdict        Verdict  `json:"verdict"`
	HardMatchScore float64  `json:"hard_match_score"`
	SoftMatchScore float64  `json:"soft_match_score"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	SkillCoverage  float64  `json:"skill_coverage"`

	// Degraded marks a result whose semantic score fell back to 0 because
	// the embedding model was unavailable. Distinct from an Error verdict.
	Degraded bool `json:"degraded,omitempty"`

	// Diagnostic carries the failure message for Error results.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// ErrorResult builds the zeroed Error record the orchestrator emits when an
// evaluation fails entirely. Skill lists are empty but non-nil.
func ErrorResult(diagnostic string) EvaluationResult {
	return EvaluationResult{
		Verdict:       VerdictError,
		MatchedSkills: []string{},
		MissingSkills: []string{},
		Diagnostic:    diagnostic,
	}
}
