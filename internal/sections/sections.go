// Package sections splits resume text into its common top-level sections.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// Section names.
const (
	Skills     = "skills"
	Experience = "experience"
	Projects   = "projects"
	Education  = "education"
)

// Names lists the recognized sections.
var Names = []string{Skills, Experience, Projects, Education}

// headings maps each section to the headings that introduce it, most common first.
var headings = map[string][]string{
	Skills:     {"skills", "technical skills", "core skills"},
	Experience: {"experience", "work experience", "professional experience", "employment"},
	Projects:   {"projects", "personal projects", "academic projects"},
	Education:  {"education", "academic background"},
}

var headingPatterns = compileHeadings()

func compileHeadings() map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(headings))
	for sec, names := range headings {
		for _, name := range names {
			// A heading sits on its own line, optionally followed by a colon.
			re := regexp.MustCompile(`(?mi)^[ \t]*` + regexp.QuoteMeta(name) + `[ \t]*:?[ \t]*$`)
			out[sec] = append(out[sec], re)
		}
	}
	return out
}

type hit struct {
	start   int
	section string
}

// Split returns the text of each recognized section, keyed by section name.
// Every name in Names is present; sections without a heading map to "".
// A section runs from its heading to the next recognized heading.
func Split(text string) map[string]string {
	text = strings.TrimSpace(text)

	out := make(map[string]string, len(Names))
	for _, n := range Names {
		out[n] = ""
	}

	var hits []hit
	for _, sec := range Names {
		for _, re := range headingPatterns[sec] {
			if loc := re.FindStringIndex(text); loc != nil {
				hits = append(hits, hit{start: loc[0], section: sec})
				break
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	for i, h := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		out[h.section] = strings.TrimSpace(text[h.start:end])
	}
	return out
}
