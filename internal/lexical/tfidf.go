package lexical

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/hirelens/internal/textnorm"
)

// buildTFIDFVectors builds TF-IDF vectors for exactly the two normalized
// documents over a shared unigram+bigram vocabulary. The corpus is the two
// documents and nothing else; IDF is the smoothed variant
// ln((1+N)/(1+df)) + 1 with N=2, and vectors are L2-normalized. The
// vocabulary is capped to the maxFeatures most frequent terms, ties broken
// alphabetically for determinism. Returns ok=false when either document has
// no content terms.
func buildTFIDFVectors(candidateText, targetText string, maxFeatures int) (candidate, target []float64, ok bool) {
	candidateTerms := ngramTerms(candidateText)
	targetTerms := ngramTerms(targetText)
	if len(candidateTerms) == 0 || len(targetTerms) == 0 {
		return nil, nil, false
	}

	vocabulary := selectVocabulary(candidateTerms, targetTerms, maxFeatures)

	candidateVec := tfidfVector(candidateTerms, targetTerms, vocabulary, true)
	targetVec := tfidfVector(candidateTerms, targetTerms, vocabulary, false)
	return candidateVec, targetVec, true
}

// ngramTerms produces the unigram and bigram term counts for one normalized
// document, with stop words removed before n-gram formation.
func ngramTerms(normalized string) map[string]int {
	tokens := textnorm.Tokenize(normalized)
	content := tokens[:0:0]
	for _, token := range tokens {
		if !stopWords[token] {
			content = append(content, token)
		}
	}
	if len(content) == 0 {
		return nil
	}

	terms := make(map[string]int, 2*len(content))
	for i, token := range content {
		terms[token]++
		if i+1 < len(content) {
			terms[token+" "+content[i+1]]++
		}
	}
	return terms
}

// selectVocabulary keeps the top maxFeatures terms across both documents by
// total frequency.
func selectVocabulary(candidateTerms, targetTerms map[string]int, maxFeatures int) []string {
	totals := make(map[string]int, len(candidateTerms)+len(targetTerms))
	for term, count := range candidateTerms {
		totals[term] += count
	}
	for term, count := range targetTerms {
		totals[term] += count
	}

	vocabulary := make([]string, 0, len(totals))
	for term := range totals {
		vocabulary = append(vocabulary, term)
	}
	sort.Slice(vocabulary, func(i, j int) bool {
		if totals[vocabulary[i]] != totals[vocabulary[j]] {
			return totals[vocabulary[i]] > totals[vocabulary[j]]
		}
		return vocabulary[i] < vocabulary[j]
	})

	if maxFeatures > 0 && len(vocabulary) > maxFeatures {
		vocabulary = vocabulary[:maxFeatures]
	}
	return vocabulary
}

// tfidfVector computes the L2-normalized TF-IDF vector for one side of the
// two-document corpus.
func tfidfVector(candidateTerms, targetTerms map[string]int, vocabulary []string, forCandidate bool) []float64 {
	const corpusSize = 2.0

	own := candidateTerms
	if !forCandidate {
		own = targetTerms
	}

	vec := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		tf := float64(own[term])
		if tf == 0 {
			continue
		}
		df := 0.0
		if candidateTerms[term] > 0 {
			df++
		}
		if targetTerms[term] > 0 {
			df++
		}
		idf := math.Log((1+corpusSize)/(1+df)) + 1
		vec[i] = tf * idf
	}

	l2Normalize(vec)
	return vec
}

// l2Normalize scales vec to unit length in place; a zero vector stays zero.
func l2Normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// cosine returns the cosine similarity of two equal-length vectors; either
// vector having zero norm yields 0, never a division error.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// stopWords is the English stop-word set removed before TF-IDF feature
// extraction. BM25 intentionally sees raw tokens.
var stopWords = func() map[string]bool {
	list := strings.Fields(`a about above after again against all am an and any
		are as at be because been before being below between both but by can
		did do does doing down during each few for from further had has have
		having he her here hers herself him himself his how i if in into is it
		its itself just me more most my myself no nor not now of off on once
		only or other our ours ourselves out over own same she should so some
		such than that the their theirs them themselves then there these they
		this those through to too under until up very was we were what when
		where which while who whom why will with you your yours yourself
		yourselves`)
	set := make(map[string]bool, len(list))
	for _, w := range list {
		set[w] = true
	}
	return set
}()
