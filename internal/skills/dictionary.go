// Package skills provides the canonical skill dictionary and dictionary-based skill extraction.
package skills

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// defaultSkills is the starter dictionary. Multi-word entries are matched as phrases.
var defaultSkills = []string{
	// Programming
	"python", "java", "javascript", "typescript", "c", "c++", "c#", "go", "rust", "sql",

	// ML/AI
	"machine learning", "deep learning", "nlp", "computer vision", "llm", "transformers",
	"scikit-learn", "pytorch", "tensorflow", "keras", "xgboost", "lightgbm",
	"opencv", "huggingface",

	// Data
	"pandas", "numpy", "matplotlib", "data analysis", "data visualization",
	"feature engineering", "statistics",

	// MLOps / Tools
	"mlflow", "docker", "kubernetes", "git", "github", "linux",
	"fastapi", "flask", "streamlit",
	"aws", "gcp", "azure",

	// Databases
	"postgresql", "mysql", "mongodb", "sqlite",

	// Extras
	"rest api", "unit testing", "pytest",
}

// Dictionary is an ordered, read-only set of canonical lowercase skill terms.
type Dictionary struct {
	terms   []string
	index   map[string]struct{}
	matcher []*termMatcher
}

// DefaultSkills returns a copy of the built-in skill list, sorted and deduplicated.
func DefaultSkills() []string {
	return NewDictionary(defaultSkills).Terms()
}

// Default returns a dictionary built from the built-in skill list.
func Default() *Dictionary {
	return NewDictionary(defaultSkills)
}

// NewDictionary builds a dictionary from raw terms. Terms are lowercased,
// whitespace-collapsed, deduplicated and sorted; empty terms are dropped.
func NewDictionary(terms []string) *Dictionary {
	index := make(map[string]struct{}, len(terms))
	clean := make([]string, 0, len(terms))
	for _, t := range terms {
		n := normalize(t)
		if n == "" {
			continue
		}
		if _, ok := index[n]; ok {
			continue
		}
		index[n] = struct{}{}
		clean = append(clean, n)
	}
	sort.Strings(clean)

	matchers := make([]*termMatcher, len(clean))
	for i, t := range clean {
		matchers[i] = newTermMatcher(t)
	}

	return &Dictionary{terms: clean, index: index, matcher: matchers}
}

// LoadDictionary reads a dictionary file with one term per line.
// Blank lines and lines starting with '#' are ignored.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open skill dictionary %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read skill dictionary %s: %w", path, err)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("skill dictionary %s is empty", path)
	}

	return NewDictionary(terms), nil
}

// Terms returns a copy of the dictionary terms in alphabetical order.
func (d *Dictionary) Terms() []string {
	out := make([]string, len(d.terms))
	copy(out, d.terms)
	return out
}

// Len returns the number of terms.
func (d *Dictionary) Len() int {
	return len(d.terms)
}

// Contains reports whether term (after normalization) is a dictionary entry.
func (d *Dictionary) Contains(term string) bool {
	_, ok := d.index[normalize(term)]
	return ok
}

// Extract returns the dictionary terms that occur in text, alphabetically and without duplicates.
// Single-word terms match on word boundaries; multi-word terms match as literal phrases.
func (d *Dictionary) Extract(text string) []string {
	t := normalize(text)
	found := make([]string, 0)
	if t == "" {
		return found
	}
	for _, m := range d.matcher {
		if m.foundIn(t) {
			found = append(found, m.term)
		}
	}
	return found
}

// normalize lowercases text and collapses whitespace runs to a single space.
func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
