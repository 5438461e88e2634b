package skills

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// termMatcher matches one dictionary term inside normalized text.
type termMatcher struct {
	term   string
	phrase bool
	pat    *boundedPattern
}

func newTermMatcher(term string) *termMatcher {
	return &termMatcher{
		term:   term,
		phrase: strings.Contains(term, " "),
		pat:    boundaryPattern(term),
	}
}

func (m *termMatcher) foundIn(normalized string) bool {
	if m.phrase {
		return strings.Contains(normalized, m.term)
	}
	return len(m.pat.findAll(normalized, 1)) > 0
}

// boundedPattern is a case-insensitive literal that must not touch a word
// character on the edges flagged start and end.
type boundedPattern struct {
	re         *regexp.Regexp
	start, end bool
}

var patternCache sync.Map // term -> *boundedPattern

// boundaryPattern returns the matcher for term with a word boundary on every
// edge whose character is a word character. This keeps "java" from matching
// inside "javascript" or "javaé" while still letting "c++" match.
func boundaryPattern(term string) *boundedPattern {
	if cached, ok := patternCache.Load(term); ok {
		return cached.(*boundedPattern)
	}

	first, _ := utf8.DecodeRuneInString(term)
	last, _ := utf8.DecodeLastRuneInString(term)
	p := &boundedPattern{
		re:    regexp.MustCompile("(?i)" + regexp.QuoteMeta(term)),
		start: term != "" && isWordRune(first),
		end:   term != "" && isWordRune(last),
	}
	patternCache.Store(term, p)
	return p
}

// findAll returns up to n non-overlapping bounded matches; n < 0 means all.
// A match rejected for touching a word character resumes one rune later.
func (p *boundedPattern) findAll(text string, n int) [][]int {
	var out [][]int
	for pos := 0; pos < len(text) && (n < 0 || len(out) < n); {
		loc := p.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && p.bounded(text, start, end) {
			out = append(out, []int{start, end})
			pos = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		if size == 0 {
			break
		}
		pos = start + size
	}
	return out
}

func (p *boundedPattern) bounded(text string, start, end int) bool {
	if p.start && start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); isWordRune(r) {
			return false
		}
	}
	if p.end && end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

// isWordRune reports whether r counts as part of a word: letters, numbers,
// combining marks and underscore, in any script.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// CountOccurrences counts case-insensitive word-boundary occurrences of term in text.
// An empty or whitespace-only term counts zero.
func CountOccurrences(text, term string) int {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" || text == "" {
		return 0
	}
	return len(boundaryPattern(term).findAll(text, -1))
}

// Missing returns the query skills absent from the candidate skills, sorted.
func Missing(query, candidate []string) []string {
	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[s] = struct{}{}
	}
	seen := make(map[string]struct{}, len(query))
	out := make([]string, 0, len(query))
	for _, s := range query {
		if _, ok := have[s]; ok {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Overlap returns the fraction of distinct query skills present in the candidate skills.
// An empty query skill set yields 0.0.
func Overlap(candidate, query []string) float64 {
	want := make(map[string]struct{}, len(query))
	for _, s := range query {
		want[s] = struct{}{}
	}
	if len(want) == 0 {
		return 0.0
	}
	matched := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		if _, ok := want[s]; ok {
			matched[s] = struct{}{}
		}
	}
	return float64(len(matched)) / float64(len(want))
}
