// Package textnorm provides the text normalization primitives shared by the
// lexical and semantic matchers. All functions are pure: empty input yields
// empty output, never an error.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	wordRe       = regexp.MustCompile(`\w+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

// sectionKeywords marks a paragraph as relevant for context matching.
var sectionKeywords = []string{
	"experience", "skills", "education", "project", "responsibility",
	"requirement", "qualification", "achievement", "certification",
}

// Normalize lowercases text, replaces non-word characters with spaces, and
// collapses repeated whitespace.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits text into lowercase word tokens.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

// ExtractPhrases extracts short 2-4 word spans from the text's sentences,
// dropping spans shorter than 6 characters, capped at maxPhrases.
func ExtractPhrases(text string, maxPhrases int) []string {
	if text == "" || maxPhrases <= 0 {
		return nil
	}

	var phrases []string
	for _, sentence := range sentenceRe.Split(text, -1) {
		words := strings.Fields(strings.TrimSpace(sentence))
		for i := 0; i < len(words)-1; i++ {
			for j := i + 2; j <= min(i+4, len(words)); j++ {
				phrase := strings.Join(words[i:j], " ")
				if len(phrase) > 5 {
					phrases = append(phrases, phrase)
				}
				if len(phrases) == maxPhrases {
					return phrases
				}
			}
		}
	}

	return phrases
}

// ExtractSections splits text into blank-line delimited paragraphs and keeps
// those of at least minLen characters that mention at least one section
// keyword (experience, skills, education, ...), capped at maxSections.
func ExtractSections(text string, minLen, maxSections int) []string {
	if text == "" || maxSections <= 0 {
		return nil
	}

	var sections []string
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if len(paragraph) <= minLen {
			continue
		}
		lower := strings.ToLower(paragraph)
		for _, keyword := range sectionKeywords {
			if strings.Contains(lower, keyword) {
				sections = append(sections, paragraph)
				break
			}
		}
		if len(sections) == maxSections {
			break
		}
	}

	return sections
}
