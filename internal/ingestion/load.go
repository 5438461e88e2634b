package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/talentrank/internal/types"
)

// LoadError reports a file that could not be read as text.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError reports a binary document format. Text must be
// extracted from such files before they are ranked.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q for %s: extract plain text first", e.Ext, e.Path)
}

var textExtensions = map[string]bool{
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
	"":          true,
}

var htmlExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// Supported reports whether path has a loadable extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return textExtensions[ext] || htmlExtensions[ext]
}

// LoadFile reads path and returns its cleaned text.
func LoadFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &LoadError{Path: path, Message: "read failed", Cause: err}
	}

	text := string(content)
	if htmlExtensions[ext] {
		text, err = ExtractMainText(text)
		if err != nil {
			return "", &LoadError{Path: path, Message: "HTML extraction failed", Cause: err}
		}
	}
	return CleanText(text), nil
}

// LoadDocuments loads every path as a Document identified by its base name.
// Directories contribute their supported files in name order; unsupported
// files inside a directory are skipped, while an explicitly named
// unsupported file is an error.
func LoadDocuments(paths []string) ([]types.Document, error) {
	var docs []types.Document
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, &LoadError{Path: p, Message: "stat failed", Cause: err}
		}

		files := []string{p}
		if info.IsDir() {
			files, err = listSupported(p)
			if err != nil {
				return nil, err
			}
		}

		for _, f := range files {
			text, err := LoadFile(f)
			if err != nil {
				return nil, err
			}
			docs = append(docs, types.Document{Identifier: filepath.Base(f), Text: text})
		}
	}
	return docs, nil
}

func listSupported(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{Path: dir, Message: "read directory failed", Cause: err}
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if Supported(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
