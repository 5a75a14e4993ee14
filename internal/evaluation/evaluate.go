// Package evaluation provides the high-level orchestration for scoring
// candidate documents against a target: normalize, lexical match, semantic
// match, aggregate. Failures never cross the batch boundary; every failure
// becomes an Error result row.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hirelens/internal/config"
	"github.com/jonathan/hirelens/internal/lexical"
	"github.com/jonathan/hirelens/internal/scoring"
	"github.com/jonathan/hirelens/internal/semantic"
	"github.com/jonathan/hirelens/internal/types"
)

// Stages of a single evaluation, used for failure context.
const (
	stageLexical   = "lexical"
	stageSemantic  = "semantic"
	stageAggregate = "aggregate"
)

// Evaluator sequences the matchers and the aggregator for one
// (candidate, target) pair and drives independent per-candidate evaluation
// across a batch.
type Evaluator struct {
	lexical  *lexical.Matcher
	semantic *semantic.Matcher
	scoring  scoring.Config
	workers  int
	log      *zap.Logger
}

// New creates an Evaluator from the engine configuration and a shared
// embedding capability. A nil logger disables logging.
func New(cfg config.Config, embedder semantic.Embedder, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Evaluator{
		lexical:  lexical.NewMatcher(cfg.Lexical, logger),
		semantic: semantic.NewMatcher(cfg.Semantic, embedder, logger),
		scoring:  cfg.Scoring,
		workers:  workers,
		log:      logger,
	}
}

// Evaluate scores one candidate against the target. It never returns an
// error: an embedding outage degrades the semantic score to 0 and marks the
// result, and any other failure is converted to an Error result.
func (e *Evaluator) Evaluate(ctx context.Context, candidate types.Document, target types.TargetSpec) types.EvaluationResult {
	result, err := e.evaluate(ctx, candidate, target)
	if err != nil {
		e.log.Error("evaluation failed", zap.Error(err))
		return types.ErrorResult(err.Error())
	}
	return result
}

// evaluate runs the pipeline for one pair, recovering panics so a single
// bad candidate cannot take down a batch.
func (e *Evaluator) evaluate(ctx context.Context, candidate types.Document, target types.TargetSpec) (result types.EvaluationResult, err error) {
	stage := stageLexical
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s stage: %v", stage, r)
		}
	}()

	if candidate.IsEmpty() || target.Document.IsEmpty() {
		e.log.Warn("empty document text, text components degrade to 0",
			zap.Bool("candidate_empty", candidate.IsEmpty()),
			zap.Bool("target_empty", target.Document.IsEmpty()))
	}

	hard := e.lexical.Score(candidate, target.Document, target.RequiredSkills, target.PreferredSkills)

	stage = stageSemantic
	degraded := false
	var softScore float64
	soft, semErr := e.semantic.Score(ctx, candidate, target.Document, target.RequiredSkills, target.PreferredSkills)
	switch {
	case semErr == nil:
		softScore = soft.OverallScore
	case errors.Is(semErr, semantic.ErrModelUnavailable):
		// Model outage is not an evaluation failure; the semantic score
		// degrades to 0 and the result is flagged.
		e.log.Warn("semantic score degraded to 0", zap.Error(semErr))
		degraded = true
	default:
		return types.EvaluationResult{}, fmt.Errorf("%s stage: %w", stage, semErr)
	}

	stage = stageAggregate
	finalScore := scoring.FinalScore(hard.OverallScore, softScore, e.scoring.HardWeight, e.scoring.SoftWeight)
	coverage := scoring.SkillCoverage(candidate.Skills, target.RequiredSkills, target.PreferredSkills)
	matched, missing := scoring.MatchedAndMissing(candidate.Skills, target.RequiredSkills, target.PreferredSkills)

	return types.EvaluationResult{
		FinalScore:     finalScore,
		Verdict:        e.scoring.Verdict(finalScore),
		HardMatchScore: hard.OverallScore,
		SoftMatchScore: softScore,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		SkillCoverage:  coverage.Overall,
		Degraded:       degraded,
	}, nil
}

// EvaluateBatch evaluates every candidate against the target independently
// and in parallel, returning exactly one result per candidate in input
// order. One candidate's failure does not affect the others. Cancellation
// stops unstarted evaluations; their slots become Error rows, and results
// already produced are kept.
func (e *Evaluator) EvaluateBatch(ctx context.Context, candidates []types.Document, target types.TargetSpec) []types.EvaluationResult {
	results := make([]types.EvaluationResult, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	runID := uuid.New()
	e.log.Info("starting batch evaluation",
		zap.String("run_id", runID.String()),
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", e.workers))

	g := new(errgroup.Group)
	g.SetLimit(e.workers)
	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = types.ErrorResult(fmt.Sprintf("evaluation canceled: %v", err))
				return nil
			}
			results[i] = e.Evaluate(ctx, candidate, target)
			e.log.Info("candidate evaluated",
				zap.String("run_id", runID.String()),
				zap.Int("index", i),
				zap.Float64("final_score", results[i].FinalScore),
				zap.String("verdict", string(results[i].Verdict)))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are data

	return results
}
