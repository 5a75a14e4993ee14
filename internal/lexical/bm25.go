package lexical

import "math"

// bm25Index is an Okapi BM25 index over a fixed corpus. The engine only
// ever builds it over the two-document corpus (candidate, target); that
// convention is load-bearing for the documented score ranges and must not
// be widened to a shared corpus statistic.
type bm25Index struct {
	k1        float64
	b         float64
	docLens   []float64
	avgDocLen float64
	termFreqs []map[string]int
	idf       map[string]float64
}

// newBM25Index builds the index. IDF follows the Okapi convention
// ln((N - df + 0.5)/(df + 0.5)); terms with negative IDF (those appearing
// in most documents) are floored to epsilon times the average IDF instead
// of being allowed to subtract relevance.
func newBM25Index(corpus [][]string, k1, b, epsilon float64) *bm25Index {
	idx := &bm25Index{
		k1:        k1,
		b:         b,
		docLens:   make([]float64, len(corpus)),
		termFreqs: make([]map[string]int, len(corpus)),
		idf:       make(map[string]float64),
	}

	df := make(map[string]int)
	totalLen := 0.0
	for i, doc := range corpus {
		idx.docLens[i] = float64(len(doc))
		totalLen += idx.docLens[i]

		freqs := make(map[string]int, len(doc))
		for _, term := range doc {
			freqs[term]++
		}
		idx.termFreqs[i] = freqs
		for term := range freqs {
			df[term]++
		}
	}
	if len(corpus) > 0 {
		idx.avgDocLen = totalLen / float64(len(corpus))
	}

	n := float64(len(corpus))
	idfSum := 0.0
	var negative []string
	for term, freq := range df {
		idf := math.Log((n - float64(freq) + 0.5) / (float64(freq) + 0.5))
		idx.idf[term] = idf
		idfSum += idf
		if idf < 0 {
			negative = append(negative, term)
		}
	}
	if len(idx.idf) > 0 {
		floor := epsilon * (idfSum / float64(len(idx.idf)))
		for _, term := range negative {
			idx.idf[term] = floor
		}
	}

	return idx
}

// Scores returns the BM25 relevance of the query against every document in
// the corpus. Repeated query terms contribute once per occurrence.
func (idx *bm25Index) Scores(query []string) []float64 {
	scores := make([]float64, len(idx.termFreqs))
	for docID, freqs := range idx.termFreqs {
		lenNorm := 1 - idx.b + idx.b*idx.docLens[docID]/idx.avgDocLen
		var score float64
		for _, term := range query {
			f := float64(freqs[term])
			if f == 0 {
				continue
			}
			score += idx.idf[term] * (f * (idx.k1 + 1)) / (f + idx.k1*lenNorm)
		}
		scores[docID] = score
	}
	return scores
}
