// Package metrics provides ranking-quality metrics over ranked, labeled lists.
package metrics

import (
	"math"
	"sort"
)

// clampK limits k to [1, n].
func clampK(k, n int) int {
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	return k
}

// PrecisionAtK returns the mean of the first k binary relevance flags.
// An empty list yields 0.0.
func PrecisionAtK(flags []int, k int) float64 {
	if len(flags) == 0 {
		return 0.0
	}
	k = clampK(k, len(flags))
	sum := 0
	for _, f := range flags[:k] {
		if f > 0 {
			sum++
		}
	}
	return float64(sum) / float64(k)
}

// DCGAtK returns the discounted cumulative gain of the first k graded labels,
// using gain 2^grade - 1 and discount log2(position + 2) for 0-indexed positions.
func DCGAtK(grades []int, k int) float64 {
	if len(grades) == 0 {
		return 0.0
	}
	k = clampK(k, len(grades))
	var dcg float64
	for i, g := range grades[:k] {
		dcg += (math.Pow(2, float64(g)) - 1) / math.Log2(float64(i)+2)
	}
	return dcg
}

// NDCGAtK returns DCG@k normalized by the DCG@k of the ideal (descending) ordering.
// When the ideal DCG is zero the result is 0.0.
func NDCGAtK(grades []int, k int) float64 {
	ideal := make([]int, len(grades))
	copy(ideal, grades)
	sort.Sort(sort.Reverse(sort.IntSlice(ideal)))

	idcg := DCGAtK(ideal, k)
	if idcg == 0 {
		return 0.0
	}
	return DCGAtK(grades, k) / idcg
}

// Binarize maps graded labels to 1 when label >= minRelevant, otherwise 0.
func Binarize(labels []int, minRelevant int) []int {
	out := make([]int, len(labels))
	for i, l := range labels {
		if l >= minRelevant {
			out[i] = 1
		}
	}
	return out
}
