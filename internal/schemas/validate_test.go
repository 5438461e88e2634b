package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	embedded "github.com/jonathan/talentrank/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBytes_EvalDataset(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantError bool
	}{
		{"inline text", `{"query":"python","items":[{"identifier":"a","text":"python","label":2}]}`, false},
		{"paths and k", `{"query_file":"jd.txt","k_values":[3,5],"items":[{"identifier":"a","path":"a.txt","label":0}]}`, false},
		{"missing query", `{"items":[{"identifier":"a","text":"x","label":1}]}`, true},
		{"label out of range", `{"query":"q","items":[{"identifier":"a","text":"x","label":3}]}`, true},
		{"text and path", `{"query":"q","items":[{"identifier":"a","text":"x","path":"p","label":1}]}`, true},
		{"zero k", `{"query":"q","k_values":[0],"items":[{"identifier":"a","text":"x","label":1}]}`, true},
		{"no items", `{"query":"q","items":[]}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBytes(embedded.EvalDataset, []byte(tt.doc))
			if tt.wantError {
				var ve *ValidationError
				require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
				assert.NotEmpty(t, ve.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateValue_ModelSweep(t *testing.T) {
	valid := map[string]any{
		"models": []map[string]any{
			{"name": "kw", "weights": map[string]float64{"lexical": 1}},
		},
	}
	assert.NoError(t, ValidateValue(embedded.ModelSweep, valid))

	invalid := map[string]any{
		"models": []map[string]any{
			{"name": "neg", "weights": map[string]float64{"lexical": -1}},
		},
	}
	assert.Error(t, ValidateValue(embedded.ModelSweep, invalid))
}

func TestEmbedded_UnknownSchema(t *testing.T) {
	_, err := Embedded("nope.schema.json")
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ds.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"query":"q","items":[{"identifier":"a","text":"x","label":1}]}`), 0644))
	assert.NoError(t, ValidateFile(embedded.EvalDataset, path))

	err := ValidateFile(embedded.EvalDataset, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
