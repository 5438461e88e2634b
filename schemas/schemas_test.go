package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			data, err := FS.ReadFile(name)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", name)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			data, err := FS.ReadFile(name)
			require.NoError(t, err)

			_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
			assert.NoError(t, err, "schema should compile: %s", name)
		})
	}
}
