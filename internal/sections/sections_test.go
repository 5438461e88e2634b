package sections

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resume = `Jane Doe
jane@example.com

Technical Skills:
Python, SQL, Docker

Work Experience
Acme Corp - Data Engineer
Built pipelines in Python.

Education
BSc Computer Science`

func TestSplit(t *testing.T) {
	got := Split(resume)

	assert.Equal(t, "Technical Skills:\nPython, SQL, Docker", got[Skills])
	assert.Equal(t, "Work Experience\nAcme Corp - Data Engineer\nBuilt pipelines in Python.", got[Experience])
	assert.Equal(t, "Education\nBSc Computer Science", got[Education])
	assert.Equal(t, "", got[Projects])
}

func TestSplit_NoHeadings(t *testing.T) {
	got := Split("Just a paragraph mentioning skills and experience inline.")

	assert.Len(t, got, len(Names))
	for _, name := range Names {
		assert.Equal(t, "", got[name])
	}
}

func TestSplit_HeadingMustStandAlone(t *testing.T) {
	got := Split("My projects include a compiler\nProjects\nCompiler in Go")

	assert.Equal(t, "Projects\nCompiler in Go", got[Projects])
}

func TestSplit_Empty(t *testing.T) {
	got := Split("")
	assert.Len(t, got, len(Names))
}

func TestSplit_NonASCIIBeforeHeading(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSkills string
	}{
		{"rune grows when lowercased", strings.Repeat("Ⱥ", 8) + "\nskills", "skills"},
		{"rune shrinks when lowercased", "İİİ\nSkills\npython", "Skills\npython"},
		{"accented uppercase heading", "Ünal Çelik\nSKILLS:\nGo, SQL", "SKILLS:\nGo, SQL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]string
			require.NotPanics(t, func() { got = Split(tt.input) })
			assert.Equal(t, tt.wantSkills, got[Skills])
			assert.True(t, utf8.ValidString(got[Skills]))
		})
	}
}
