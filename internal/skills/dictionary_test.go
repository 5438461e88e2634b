package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSkills_SortedAndUnique(t *testing.T) {
	terms := DefaultSkills()
	require.NotEmpty(t, terms)
	assert.IsNonDecreasing(t, terms)

	seen := make(map[string]bool)
	for _, term := range terms {
		assert.False(t, seen[term], "duplicate term %q", term)
		seen[term] = true
	}
	assert.Contains(t, terms, "machine learning")
	assert.Contains(t, terms, "c++")
}

func TestNewDictionary_NormalizesTerms(t *testing.T) {
	d := NewDictionary([]string{"  Python ", "python", "Machine   Learning", "", "Go"})

	assert.Equal(t, []string{"go", "machine learning", "python"}, d.Terms())
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("PYTHON"))
	assert.False(t, d.Contains("rust"))
}

func TestExtract_WordBoundaryForSingleWords(t *testing.T) {
	d := NewDictionary([]string{"java", "javascript", "go"})

	assert.Equal(t, []string{"javascript"}, d.Extract("Senior JavaScript engineer"))
	assert.Equal(t, []string{"java", "javascript"}, d.Extract("Java and JavaScript"))
	assert.Empty(t, d.Extract("Google and gopher fans"))
}

func TestExtract_WordBoundaryForNonASCIINeighbours(t *testing.T) {
	d := NewDictionary([]string{"java", "r"})

	assert.Empty(t, d.Extract("javaé and ßr"))
	assert.Equal(t, []string{"java", "r"}, d.Extract("Java, R and Müller"))
}

func TestExtract_PhraseMatchAfterNormalization(t *testing.T) {
	d := NewDictionary([]string{"machine learning", "rest api"})

	found := d.Extract("Built MACHINE\n\tlearning pipelines behind a REST   API")
	assert.Equal(t, []string{"machine learning", "rest api"}, found)
}

func TestExtract_SymbolTerms(t *testing.T) {
	d := Default()

	found := d.Extract("Wrote C++ and C# services, some plain C too")
	assert.Contains(t, found, "c++")
	assert.Contains(t, found, "c#")
	assert.Contains(t, found, "c")
}

func TestExtract_SortedNoDuplicates(t *testing.T) {
	d := Default()

	found := d.Extract("python python docker Python kubernetes docker aws")
	assert.Equal(t, []string{"aws", "docker", "kubernetes", "python"}, found)
}

func TestExtract_EmptyText(t *testing.T) {
	d := Default()

	assert.Empty(t, d.Extract(""))
	assert.Empty(t, d.Extract("   \n\t "))
}

func TestExtract_ResultsAreDictionaryTerms(t *testing.T) {
	d := Default()

	for _, s := range d.Extract("Python, SQL, pandas, numpy, deep learning with PyTorch on AWS and GCP") {
		assert.True(t, d.Contains(s), "extracted %q is not a dictionary term", s)
	}
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.txt")
	content := "# languages\nGo\n\nRust\nmachine learning\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "machine learning", "rust"}, d.Terms())
}

func TestLoadDictionary_Errors(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n\n"), 0644))
	_, err = LoadDictionary(empty)
	assert.Error(t, err)
}
