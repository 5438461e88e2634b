package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity_EmptyInput(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"both empty", "", ""},
		{"first empty", "", "python developer"},
		{"second whitespace", "python developer", "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, Similarity(tt.a, tt.b))
		})
	}
}

func TestSimilarity_IdenticalTexts(t *testing.T) {
	text := "Python engineer building machine learning pipelines with pandas"
	assert.InDelta(t, 1.0, Similarity(text, text), 1e-9)
}

func TestSimilarity_DisjointTexts(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("kubernetes docker terraform", "watercolor painting portraits"))
}

func TestSimilarity_OnlyStopWords(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("the and of", "python"))
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"python sql pandas", "python developer with sql"},
		{"senior backend engineer golang", "golang golang golang"},
		{"a", "b"},
		{"data analysis statistics", "statistics for data science and analysis"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestSimilarity_MoreOverlapScoresHigher(t *testing.T) {
	query := "python developer with pandas numpy and sql experience"
	close := "python developer experienced in pandas numpy sql"
	far := "python hobbyist who enjoys gardening"

	assert.Greater(t, Similarity(close, query), Similarity(far, query))
}

func TestSimilarity_Deterministic(t *testing.T) {
	a := "Built REST APIs in Go and Python, deployed on Kubernetes with Docker"
	b := "Looking for a backend engineer: Go, Kubernetes, Docker, REST APIs"

	first := Similarity(a, b)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Similarity(a, b))
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "machine learning engineer pytorch"
	b := "pytorch research scientist machine vision"
	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-12)
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("The Python developer, with 5 years of SQL!")
	assert.Equal(t, []string{"python", "developer", "years", "sql"}, tokens)
}

func TestTokenize_NonASCIILetters(t *testing.T) {
	tokens := Tokenize("Résumé naïve café Müller")
	assert.Equal(t, []string{"résumé", "naïve", "café", "müller"}, tokens)
}

func TestSimilarity_AccentedWordsDoNotShareFragments(t *testing.T) {
	// Split at the accents these share "ller" and "sum".
	assert.Equal(t, 0.0, Similarity("Müller résumé", "Heller summary"))
	assert.InDelta(t, 1.0, Similarity("Müller résumé", "résumé Müller"), 1e-9)
}
