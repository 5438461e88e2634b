package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_Text(t *testing.T) {
	path := writeFile(t, t.TempDir(), "alice.txt", "Python   developer\r\n\r\n\r\nSQL")

	text, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Python developer\n\nSQL", text)
}

func TestLoadFile_HTML(t *testing.T) {
	html := `<html><body><nav>Home | Jobs</nav>
<main><h1>Skills</h1><ul><li>Python</li><li>Docker</li></ul><p>Five years building APIs.</p></main>
<footer>Copyright</footer><script>var x = 1;</script></body></html>`
	path := writeFile(t, t.TempDir(), "bob.html", html)

	text, err := LoadFile(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Skills\n")
	assert.Contains(t, text, "Python")
	assert.Contains(t, text, "Five years building APIs.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "var x")
}

func TestLoadFile_Unsupported(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.pdf", "%PDF-1.4")

	_, err := LoadFile(path)
	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".pdf", unsupported.Ext)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDocuments_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "# Bob\nGo")
	writeFile(t, dir, "a.txt", "Alice")
	writeFile(t, dir, "c.docx", "binary")
	writeFile(t, dir, ".hidden.txt", "skip")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	docs, err := LoadDocuments([]string{dir})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.txt", docs[0].Identifier)
	assert.Equal(t, "Alice", docs[0].Text)
	assert.Equal(t, "b.md", docs[1].Identifier)
}

func TestLoadDocuments_ExplicitUnsupportedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c.docx", "binary")

	_, err := LoadDocuments([]string{path})
	assert.Error(t, err)
}
