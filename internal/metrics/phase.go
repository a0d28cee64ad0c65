package metrics

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PhaseCategory is the set of coarse progress categories a free-text FASE
// value falls into. Matching is plain substring containment on the
// lower-cased phase, so one phase can belong to several categories.
type PhaseCategory uint8

const (
	PhaseDesign PhaseCategory = 1 << iota
	PhaseProgramming
	PhaseDelivered
)

const (
	designMarker      = "design"
	programmingMarker = "program"
	deliveredPhase    = "entregue"
)

// ClassifyPhase returns the categories of a phase value.
func ClassifyPhase(phase string) PhaseCategory {
	lower := cases.Lower(language.BrazilianPortuguese).String(phase)

	var c PhaseCategory
	if strings.Contains(lower, designMarker) {
		c |= PhaseDesign
	}
	if strings.Contains(lower, programmingMarker) {
		c |= PhaseProgramming
	}
	if lower == deliveredPhase {
		c |= PhaseDelivered
	}
	return c
}

// Has reports whether c includes every category in other.
func (c PhaseCategory) Has(other PhaseCategory) bool {
	return c&other == other
}

func (c PhaseCategory) String() string {
	var names []string
	if c.Has(PhaseDesign) {
		names = append(names, "design")
	}
	if c.Has(PhaseProgramming) {
		names = append(names, "programming")
	}
	if c.Has(PhaseDelivered) {
		names = append(names, "delivered")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
