package ui

import (
	"strings"

	"lifeee/pkg/lexicon"
)

// Picker selects among the catalog terms that carry a pattern.
type Picker struct {
	terms    []lexicon.Term
	selected int
}

// NewPicker returns a picker over the populated terms of lex with nothing
// selected.
func NewPicker(lex *lexicon.Lexicon) *Picker {
	return &Picker{terms: lex.Populated(), selected: -1}
}

// Len returns the number of selectable terms.
func (p *Picker) Len() int { return len(p.terms) }

// Next selects the following term, wrapping around.
func (p *Picker) Next() { p.move(1) }

// Prev selects the preceding term, wrapping around.
func (p *Picker) Prev() { p.move(-1) }

func (p *Picker) move(d int) {
	n := len(p.terms)
	if n == 0 {
		return
	}
	if p.selected < 0 {
		if d > 0 {
			p.selected = 0
		} else {
			p.selected = n - 1
		}
		return
	}
	p.selected = ((p.selected+d)%n + n) % n
}

// Select selects the term with the given name and reports whether it exists.
func (p *Picker) Select(name string) bool {
	for i, t := range p.terms {
		if t.Name == name {
			p.selected = i
			return true
		}
	}
	return false
}

// Selected returns the selected term, if any.
func (p *Picker) Selected() (lexicon.Term, bool) {
	if p.selected < 0 {
		return lexicon.Term{}, false
	}
	return p.terms[p.selected], true
}

// Label describes the current selection.
func (p *Picker) Label() string {
	t, ok := p.Selected()
	if !ok {
		return "Select a pattern…"
	}
	return Label(t)
}

// Label formats a term as its name followed by its tags, if any.
func Label(t lexicon.Term) string {
	if len(t.Tags) == 0 {
		return t.Name
	}
	return t.Name + " (" + strings.Join(t.Tags, ", ") + ")"
}
