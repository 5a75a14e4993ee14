// Package types provides type definitions for structured data used throughout the hirelens engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Document is the ingestion collaborator's output for one resume or job
// description: the raw text plus the ordered list of canonical skill strings
// extracted from it. A Document is immutable once produced.
type Document struct {
	RawText string   `json:"raw_text"`
	Skills  []string `json:"skills"`
}

// IsEmpty reports whether the document carries no usable text.
func (d Document) IsEmpty() bool {
	return strings.TrimSpace(d.RawText) == ""
}

// TargetSpec is the target (job description) side of the evaluation input
// contract: the target document plus its required and preferred skill lists.
// The required/preferred lists may overlap with Document.Skills; they are the
// authoritative skill demands for coverage computation.
type TargetSpec struct {
	Document        Document `json:"document"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
}

// BatchInput is the on-disk shape consumed by the batch CLI command:
// one target and any number of candidate documents.
type BatchInput struct {
	Target     TargetSpec `json:"target"`
	Candidates []Document `json:"candidates"`
}
