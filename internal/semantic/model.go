// Package semantic computes meaning-based similarity between texts using
// dense sentence embeddings.
package semantic

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"
)

// Encoder turns text into a fixed-dimension embedding vector.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	ModelID() string
	Close() error
}

// Loader constructs an Encoder. It is called at most once per Model.
type Loader func() (Encoder, error)

// InitError reports that the embedding model could not be initialized.
// It is fatal for scoring and is never retried.
type InitError struct {
	Message string
	Cause   error
}

func (e *InitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InitError) Unwrap() error {
	return e.Cause
}

// Model is a lazily loaded, shareable handle to an embedding model.
// The encoder is loaded on first use; concurrent callers wait for the same load.
type Model struct {
	loader Loader
	logger *slog.Logger

	once    sync.Once
	enc     Encoder
	initErr error

	mu    sync.RWMutex
	cache map[string][]float32
}

// NewModel returns a Model that loads its encoder with loader on first use.
func NewModel(loader Loader, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		loader: loader,
		logger: logger,
		cache:  make(map[string][]float32),
	}
}

// NewModelFromEncoder wraps an already constructed encoder.
func NewModelFromEncoder(enc Encoder) *Model {
	return NewModel(func() (Encoder, error) { return enc, nil }, nil)
}

// Init loads the encoder if it has not been loaded yet. It is idempotent and
// returns the same error to every caller when loading failed.
func (m *Model) Init() error {
	m.once.Do(func() {
		if m.loader == nil {
			m.initErr = &InitError{Message: "no embedding model loader configured"}
			return
		}
		enc, err := m.loader()
		if err != nil {
			m.initErr = &InitError{Message: "failed to load embedding model", Cause: err}
			m.logger.Error("embedding model load failed", "error", err)
			return
		}
		if enc == nil {
			m.initErr = &InitError{Message: "embedding model loader returned nil encoder"}
			return
		}
		m.enc = enc
		m.logger.Info("embedding model loaded", "model", enc.ModelID())
	})
	return m.initErr
}

// ModelID loads the encoder if needed and returns its identifier, or "" when
// loading failed. It is safe to call concurrently with Init and Embed.
func (m *Model) ModelID() string {
	if err := m.Init(); err != nil {
		return ""
	}
	return m.enc.ModelID()
}

// Similarity returns the cosine similarity of the embeddings of a and b, clamped to [0,1].
// Empty or whitespace-only input yields 0.0 without touching the model.
func (m *Model) Similarity(ctx context.Context, a, b string) (float64, error) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0.0, nil
	}
	va, err := m.Embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := m.Embed(ctx, b)
	if err != nil {
		return 0, err
	}
	return Cosine(va, vb), nil
}

// Embed returns the unit-length embedding of text. Embeddings are memoized in
// memory for the lifetime of the Model.
func (m *Model) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := m.Init(); err != nil {
		return nil, err
	}
	key := m.cacheKey(text)

	m.mu.RLock()
	vec, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return vec, nil
	}

	raw, err := m.enc.Encode(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to encode text: %w", err)
	}
	vec = Normalize(raw)

	m.mu.Lock()
	m.cache[key] = vec
	m.mu.Unlock()
	return vec, nil
}

// Close releases the underlying encoder, if loaded.
func (m *Model) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[string][]float32)
	if m.enc == nil {
		return nil
	}
	return m.enc.Close()
}

func (m *Model) cacheKey(text string) string {
	h := sha1.New()
	_, _ = io.WriteString(h, m.enc.ModelID())
	_, _ = io.WriteString(h, "|")
	_, _ = io.WriteString(h, text)
	return hex.EncodeToString(h.Sum(nil))
}

// Normalize returns a unit-length copy of vec. A zero vector is returned unchanged.
func Normalize(vec []float32) []float32 {
	out := make([]float32, len(vec))
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		copy(out, vec)
		return out
	}
	n := math.Sqrt(sum)
	for i, v := range vec {
		out[i] = float32(float64(v) / n)
	}
	return out
}

// Cosine returns the cosine similarity of a and b clamped to [0,1].
// Mismatched or zero vectors yield 0.0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0.0
	}
	s := dot / (math.Sqrt(na) * math.Sqrt(nb))
	if s < 0 {
		return 0.0
	}
	if s > 1 {
		return 1.0
	}
	return s
}
