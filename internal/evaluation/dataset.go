package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/talentrank/internal/ingestion"
	"github.com/jonathan/talentrank/internal/schemas"
	"github.com/jonathan/talentrank/internal/types"
	embedded "github.com/jonathan/talentrank/schemas"
)

// DatasetError reports an evaluation dataset that could not be loaded.
type DatasetError struct {
	Path    string
	Message string
	Cause   error
}

func (e *DatasetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset %s: %s", e.Path, e.Message)
}

func (e *DatasetError) Unwrap() error {
	return e.Cause
}

// Dataset is a query with labeled candidate items.
type Dataset struct {
	Query   string
	KValues []int
	Items   []types.EvalItem
}

type datasetFile struct {
	Query     string        `json:"query"`
	QueryFile string        `json:"query_file"`
	KValues   []int         `json:"k_values"`
	Items     []datasetItem `json:"items"`
}

type datasetItem struct {
	Identifier string `json:"identifier"`
	Text       string `json:"text"`
	Path       string `json:"path"`
	Label      int    `json:"label"`
}

// LoadDataset reads a JSON dataset file. Relative query_file and item paths
// are resolved against the dataset's directory.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DatasetError{Path: path, Message: "read failed", Cause: err}
	}
	if err := schemas.ValidateBytes(embedded.EvalDataset, data); err != nil {
		return nil, &DatasetError{Path: path, Message: "schema validation failed", Cause: err}
	}

	var f datasetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &DatasetError{Path: path, Message: "invalid JSON", Cause: err}
	}

	base := filepath.Dir(path)
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	ds := &Dataset{Query: f.Query, KValues: f.KValues}
	if f.QueryFile != "" {
		ds.Query, err = ingestion.LoadFile(resolve(f.QueryFile))
		if err != nil {
			return nil, &DatasetError{Path: path, Message: "query file", Cause: err}
		}
	}
	if strings.TrimSpace(ds.Query) == "" {
		return nil, &DatasetError{Path: path, Message: "query is empty"}
	}

	ds.Items = make([]types.EvalItem, 0, len(f.Items))
	for _, it := range f.Items {
		text := it.Text
		if it.Path != "" {
			text, err = ingestion.LoadFile(resolve(it.Path))
			if err != nil {
				return nil, &DatasetError{Path: path, Message: fmt.Sprintf("item %s", it.Identifier), Cause: err}
			}
		}
		ds.Items = append(ds.Items, types.EvalItem{
			Identifier: it.Identifier,
			Text:       text,
			Label:      it.Label,
		})
	}
	return ds, nil
}
