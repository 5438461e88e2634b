// Package robustness computes multiplicative score adjustments that counter
// keyword stuffing and document-length bias.
package robustness

import (
	"sort"
	"strings"

	"github.com/jonathan/talentrank/internal/skills"
)

// Tier applies Factor when the measured quantity is strictly greater than Above.
type Tier struct {
	Above  float64 `json:"above" yaml:"above" koanf:"above" validate:"gte=0"`
	Factor float64 `json:"factor" yaml:"factor" koanf:"factor" validate:"gt=0,lte=1"`
}

// Policy holds the stuffing and length tiers.
// The default thresholds are fixed policy and are not calibrated against data.
type Policy struct {
	Stuffing []Tier `json:"stuffing" yaml:"stuffing" koanf:"stuffing" validate:"dive"`
	Length   []Tier `json:"length" yaml:"length" koanf:"length" validate:"dive"`
}

// DefaultPolicy returns the standard tiers.
func DefaultPolicy() Policy {
	return Policy{
		Stuffing: []Tier{
			{Above: 6, Factor: 0.85},
			{Above: 4, Factor: 0.90},
			{Above: 3, Factor: 0.95},
		},
		Length: []Tier{
			{Above: 1500, Factor: 0.90},
			{Above: 1000, Factor: 0.95},
		},
	}
}

// NewPolicy returns a policy with both tier lists sorted by descending threshold.
func NewPolicy(stuffing, length []Tier) Policy {
	return Policy{Stuffing: sortTiers(stuffing), Length: sortTiers(length)}
}

func sortTiers(tiers []Tier) []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Above > out[j].Above })
	return out
}

// StuffingPenalty returns the factor for the mean word-boundary occurrence
// count of querySkills in text. Skills with empty names are ignored; no
// skills yields 1.0.
func (p Policy) StuffingPenalty(text string, querySkills []string) float64 {
	lower := strings.ToLower(text)
	total, n := 0, 0
	for _, s := range querySkills {
		if strings.TrimSpace(s) == "" {
			continue
		}
		total += skills.CountOccurrences(lower, s)
		n++
	}
	if n == 0 {
		return 1.0
	}
	return factorFor(p.Stuffing, float64(total)/float64(n))
}

// LengthFactor returns the factor for the whitespace-delimited word count of text.
func (p Policy) LengthFactor(text string) float64 {
	return factorFor(p.Length, float64(len(strings.Fields(text))))
}

// factorFor picks the first tier exceeded, scanning thresholds high to low.
func factorFor(tiers []Tier, value float64) float64 {
	for _, t := range sortTiers(tiers) {
		if value > t.Above {
			return t.Factor
		}
	}
	return 1.0
}
