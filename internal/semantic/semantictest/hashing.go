// Package semantictest provides deterministic encoders for tests.
package semantictest

import (
	"context"
	"errors"
	"hash/fnv"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/jonathan/talentrank/internal/semantic"
)

// HashingEncoder embeds text as a bag of hashed lowercase words.
// Texts sharing more words have higher cosine similarity.
type HashingEncoder struct {
	Dim   int
	calls atomic.Int64
}

// NewHashingEncoder returns a HashingEncoder with the given dimension.
func NewHashingEncoder(dim int) *HashingEncoder {
	if dim <= 0 {
		dim = 64
	}
	return &HashingEncoder{Dim: dim}
}

// Encode implements semantic.Encoder.
func (h *HashingEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	h.calls.Add(1)
	vec := make([]float32, h.Dim)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	for _, w := range words {
		vec[bucket(w, h.Dim)]++
	}
	return vec, nil
}

// bucket maps a word to a vector index in [0, dim).
func bucket(word string, dim int) int {
	f := fnv.New32a()
	_, _ = f.Write([]byte(word))
	return int(f.Sum32() % uint32(dim))
}

// Calls reports how many times Encode ran.
func (h *HashingEncoder) Calls() int64 {
	return h.calls.Load()
}

// ModelID implements semantic.Encoder.
func (h *HashingEncoder) ModelID() string { return "hashing-test" }

// Close implements semantic.Encoder.
func (h *HashingEncoder) Close() error { return nil }

// ErrLoad is returned by FailingLoader.
var ErrLoad = errors.New("model weights not found")

// FailingLoader is a semantic.Loader that always fails and counts its calls.
func FailingLoader(calls *int) semantic.Loader {
	return func() (semantic.Encoder, error) {
		if calls != nil {
			*calls++
		}
		return nil, ErrLoad
	}
}
