package app

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSoupTerm(t *testing.T) {
	c := qt.New(t)
	term := SoupTerm(1337, 12)
	c.Assert(term.Name, qt.Equals, "Soup #1337")
	c.Assert(term.Tags, qt.DeepEquals, []string{"12x12"})
	c.Assert(term.Empty(), qt.IsFalse)
	w, h := term.Size()
	c.Assert(w <= 12 && h <= 12, qt.IsTrue)
	c.Assert(SoupTerm(1337, 12).CellSet().Equal(term.CellSet()), qt.IsTrue)
}
