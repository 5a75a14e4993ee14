// Package schemas embeds the JSON Schemas for the engine's external
// contracts: the batch evaluation input and the evaluation result record.
package schemas

import (
	_ "embed"

	"github.com/jonathan/hirelens/internal/schemas"
)

//go:embed evaluation_input.schema.json
var evaluationInput string

//go:embed evaluation_result.schema.json
var evaluationResult string

// ValidateEvaluationInput validates a batch input payload against the input
// contract schema.
func ValidateEvaluationInput(jsonContent string) error {
	return schemas.ValidateJSONString(evaluationInput, jsonContent)
}

// ValidateEvaluationResult validates a single result record against the
// output contract schema.
func ValidateEvaluationResult(jsonContent string) error {
	return schemas.ValidateJSONString(evaluationResult, jsonContent)
}
