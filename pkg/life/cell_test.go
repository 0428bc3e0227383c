package life

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestWithAliveIdempotent(t *testing.T) {
	c := qt.New(t)
	for _, s := range []CellSet{NewCellSet(), cells(0, 0, 5, -5), cells(-1, -1)} {
		for _, cell := range []Cell{{0, 0}, {-1, -1}, {3, 4}} {
			once := WithAlive(s, cell)
			c.Assert(WithAlive(once, cell).Equal(once), qt.IsTrue)
			c.Assert(IsAlive(once, cell), qt.IsTrue)
		}
	}
}

func TestWithDeadIdempotent(t *testing.T) {
	c := qt.New(t)
	for _, s := range []CellSet{NewCellSet(), cells(0, 0, 5, -5), cells(-1, -1)} {
		for _, cell := range []Cell{{0, 0}, {-1, -1}, {3, 4}} {
			once := WithDead(s, cell)
			c.Assert(WithDead(once, cell).Equal(once), qt.IsTrue)
			c.Assert(IsAlive(once, cell), qt.IsFalse)
		}
	}
}

func TestMutationHelpersReturnNewSets(t *testing.T) {
	c := qt.New(t)
	s := cells(1, 1)
	added := WithAlive(s, Cell{2, 2})
	removed := WithDead(s, Cell{1, 1})

	c.Assert(s.Len(), qt.Equals, 1)
	c.Assert(IsAlive(s, Cell{2, 2}), qt.IsFalse)
	c.Assert(IsAlive(s, Cell{1, 1}), qt.IsTrue)
	c.Assert(added.Len(), qt.Equals, 2)
	c.Assert(removed.Len(), qt.Equals, 0)
}

func TestZeroValueIsEmpty(t *testing.T) {
	c := qt.New(t)
	var s CellSet
	c.Assert(s.Len(), qt.Equals, 0)
	c.Assert(IsAlive(s, Cell{}), qt.IsFalse)
	c.Assert(WithAlive(s, Cell{}).Len(), qt.Equals, 1)
	c.Assert(s.Equal(NewCellSet()), qt.IsTrue)
}

func TestCellsSorted(t *testing.T) {
	c := qt.New(t)
	s := cells(2, 1, -3, 0, 0, 1, 7, -2)
	c.Assert(s.Cells(), qt.DeepEquals, []Cell{{7, -2}, {-3, 0}, {0, 1}, {2, 1}})
}

func TestBounds(t *testing.T) {
	c := qt.New(t)
	_, _, ok := NewCellSet().Bounds()
	c.Assert(ok, qt.IsFalse)

	lo, hi, ok := cells(2, 1, -3, 0, 0, 4).Bounds()
	c.Assert(ok, qt.IsTrue)
	c.Assert(lo, qt.Equals, Cell{-3, 0})
	c.Assert(hi, qt.Equals, Cell{2, 4})
}

func TestTranslate(t *testing.T) {
	c := qt.New(t)
	s := cells(0, 0, 1, 2)
	c.Assert(s.Translate(-1, 3).Cells(), qt.DeepEquals, []Cell{{-1, 3}, {0, 5}})
	c.Assert(s.Cells(), qt.DeepEquals, []Cell{{0, 0}, {1, 2}})
}
