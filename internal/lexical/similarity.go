// Package lexical computes term-overlap relevance between two texts using
// TF-IDF vectors fitted on exactly the two documents being compared.
package lexical

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches runs of two or more Unicode word characters.
// Combining marks only continue a token.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{M}\p{N}_]+`)

// Similarity returns the cosine similarity of the TF-IDF vectors of a and b, in [0,1].
// It returns exactly 0.0 if either text is empty after trimming.
func Similarity(a, b string) float64 {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0.0
	}

	ta := termCounts(a)
	tb := termCounts(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0.0
	}

	// Smoothed IDF over the two-document corpus: ln((1+n)/(1+df)) + 1.
	const n = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if _, ok := ta[term]; ok {
			df++
		}
		if _, ok := tb[term]; ok {
			df++
		}
		return math.Log((1+n)/(1+df)) + 1
	}

	va := weigh(ta, idf)
	vb := weigh(tb, idf)

	var dot float64
	for _, term := range sortedKeys(va) {
		if wb, ok := vb[term]; ok {
			dot += va[term] * wb
		}
	}
	na, nb := norm(va), norm(vb)
	if na == 0 || nb == 0 {
		return 0.0
	}

	score := dot / (na * nb)
	if score < 0 {
		return 0.0
	}
	if score > 1 {
		return 1.0
	}
	return score
}

// Tokenize lowercases text and returns its tokens with English stop words removed.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, stop := stopWords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, tok := range Tokenize(text) {
		counts[tok]++
	}
	return counts
}

func weigh(counts map[string]float64, idf func(string) float64) map[string]float64 {
	out := make(map[string]float64, len(counts))
	for term, c := range counts {
		out[term] = c * idf(term)
	}
	return out
}

// norm sums in key order so repeated calls are bit-identical.
func norm(v map[string]float64) float64 {
	var sum float64
	for _, term := range sortedKeys(v) {
		sum += v[term] * v[term]
	}
	return math.Sqrt(sum)
}

func sortedKeys(v map[string]float64) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
