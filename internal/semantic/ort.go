package semantic

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	"golang.org/x/text/unicode/norm"
)

// DefaultModelID names the sentence-transformer the ONNX export is expected to contain.
const DefaultModelID = "all-MiniLM-L6-v2"

const (
	defaultMaxSeqLen = 256
	defaultHidden    = 384
)

// OrtConfig locates the ONNX runtime library, model and tokenizer files.
type OrtConfig struct {
	LibraryPath   string
	ModelPath     string
	TokenizerPath string
	ModelID       string
	MaxSeqLen     int
	HiddenSize    int
}

// OrtEncoder runs a sentence-transformer exported to ONNX and mean-pools its
// last hidden state under the attention mask.
type OrtEncoder struct {
	cfg     OrtConfig
	tk      *tokenizer.Tokenizer
	session *ort.DynamicAdvancedSession
	mu      sync.Mutex
}

var ortEnvOnce sync.Once
var ortEnvErr error

// NewOrtEncoder initializes the ONNX runtime environment and loads the model.
func NewOrtEncoder(cfg OrtConfig) (*OrtEncoder, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("model path is required")
	}
	if cfg.TokenizerPath == "" {
		cfg.TokenizerPath = filepath.Join(filepath.Dir(cfg.ModelPath), "tokenizer.json")
	}
	if cfg.ModelID == "" {
		cfg.ModelID = DefaultModelID
	}
	if cfg.MaxSeqLen <= 0 {
		cfg.MaxSeqLen = defaultMaxSeqLen
	}
	if cfg.HiddenSize <= 0 {
		cfg.HiddenSize = defaultHidden
	}

	ortEnvOnce.Do(func() {
		if cfg.LibraryPath != "" {
			ort.SetSharedLibraryPath(cfg.LibraryPath)
		}
		ortEnvErr = ort.InitializeEnvironment()
	})
	if ortEnvErr != nil {
		return nil, fmt.Errorf("failed to initialize onnxruntime: %w", ortEnvErr)
	}

	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer %s: %w", cfg.TokenizerPath, err)
	}

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{"input_ids", "attention_mask", "token_type_ids"},
		[]string{"last_hidden_state"}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create onnx session for %s: %w", cfg.ModelPath, err)
	}

	return &OrtEncoder{cfg: cfg, tk: tk, session: session}, nil
}

// OrtLoader returns a Loader that builds an OrtEncoder from cfg.
func OrtLoader(cfg OrtConfig) Loader {
	return func() (Encoder, error) {
		return NewOrtEncoder(cfg)
	}
}

// ModelID returns the configured model identifier.
func (e *OrtEncoder) ModelID() string {
	return e.cfg.ModelID
}

// Close releases the ONNX session.
func (e *OrtEncoder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil
	}
	err := e.session.Destroy()
	e.session = nil
	return err
}

// Encode embeds text. Sequences longer than MaxSeqLen are truncated, keeping
// the trailing separator token.
func (e *OrtEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil, errors.New("encoder is closed")
	}

	enc, err := e.tk.EncodeSingle(norm.NFKC.String(text), true)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	ids, mask, types := truncate(enc.Ids, enc.AttentionMask, enc.TypeIds, e.cfg.MaxSeqLen)
	seqLen := int64(len(ids))
	if seqLen == 0 {
		return make([]float32, e.cfg.HiddenSize), nil
	}

	shape := ort.NewShape(1, seqLen)
	idsT, err := ort.NewTensor(shape, toInt64(ids))
	if err != nil {
		return nil, err
	}
	defer func() { _ = idsT.Destroy() }()
	maskT, err := ort.NewTensor(shape, toInt64(mask))
	if err != nil {
		return nil, err
	}
	defer func() { _ = maskT.Destroy() }()
	typesT, err := ort.NewTensor(shape, toInt64(types))
	if err != nil {
		return nil, err
	}
	defer func() { _ = typesT.Destroy() }()

	out, err := ort.NewEmptyTensor[float32](ort.NewShape(1, seqLen, int64(e.cfg.HiddenSize)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = out.Destroy() }()

	if err := e.session.Run([]ort.Value{idsT, maskT, typesT}, []ort.Value{out}); err != nil {
		return nil, fmt.Errorf("onnx run: %w", err)
	}
	return meanPool(out.GetData(), mask, e.cfg.HiddenSize), nil
}

func truncate(ids, mask, types []int, maxLen int) ([]int, []int, []int) {
	if len(mask) != len(ids) {
		mask = make([]int, len(ids))
		for i := range mask {
			mask[i] = 1
		}
	}
	if len(types) != len(ids) {
		types = make([]int, len(ids))
	}
	if len(ids) <= maxLen {
		return ids, mask, types
	}
	last := len(ids) - 1
	ids = append(append([]int{}, ids[:maxLen-1]...), ids[last])
	mask = append(append([]int{}, mask[:maxLen-1]...), mask[last])
	types = append(append([]int{}, types[:maxLen-1]...), types[last])
	return ids, mask, types
}

func meanPool(hidden []float32, mask []int, dim int) []float32 {
	out := make([]float32, dim)
	var count float32
	for t, m := range mask {
		if m == 0 {
			continue
		}
		row := hidden[t*dim : (t+1)*dim]
		for i, v := range row {
			out[i] += v
		}
		count++
	}
	if count == 0 {
		return out
	}
	for i := range out {
		out[i] /= count
	}
	return out
}

func toInt64(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
