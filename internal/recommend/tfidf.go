// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// ErrEmptyVocabulary is returned when neither document contains a term.
var ErrEmptyVocabulary = errors.New("empty vocabulary: documents contain no terms")

// termPattern matches runs of two or more word characters.
var termPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer computes TF-IDF cosine similarity between a fixed reference
// document and arbitrary query documents. Each comparison fits a
// two-document corpus: the query and the reference.
//
// Weights use raw term counts and smoothed IDF, ln((1+n)/(1+df)) + 1, with
// L2-normalized vectors.
type Vectorizer struct {
	reference map[string]int
}

// NewVectorizer tokenizes the reference document once.
func NewVectorizer(reference string) *Vectorizer {
	return &Vectorizer{reference: termCounts(reference)}
}

// Similarity returns the cosine similarity between doc and the reference
// document, in [0, 1].
func (v *Vectorizer) Similarity(doc string) (float64, error) {
	query := termCounts(doc)
	if len(query) == 0 && len(v.reference) == 0 {
		return 0, ErrEmptyVocabulary
	}

	const n = 2.0
	idf := func(df int) float64 {
		return math.Log((1+n)/(1+float64(df))) + 1
	}

	var dot, normQ, normR float64
	for term, count := range query {
		df := 1
		refCount, shared := v.reference[term]
		if shared {
			df = 2
		}
		w := float64(count) * idf(df)
		normQ += w * w
		if shared {
			dot += w * float64(refCount) * idf(df)
		}
	}
	for term, count := range v.reference {
		df := 1
		if _, shared := query[term]; shared {
			df = 2
		}
		w := float64(count) * idf(df)
		normR += w * w
	}

	if normQ == 0 || normR == 0 {
		return 0, nil
	}
	sim := dot / (math.Sqrt(normQ) * math.Sqrt(normR))
	return math.Min(1, math.Max(0, sim)), nil
}

// CosineTFIDF is a one-shot helper comparing two documents.
func CosineTFIDF(a, b string) (float64, error) {
	return NewVectorizer(b).Similarity(a)
}

func termCounts(text string) map[string]int {
	terms := termPattern.FindAllString(strings.ToLower(text), -1)
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}
