package core

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"lifeee/pkg/lexicon"
	"lifeee/pkg/life"
)

var blinker = lexicon.Term{
	Name:  "Blinker",
	Cells: []life.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
}

func TestSessionApply(t *testing.T) {
	c := qt.New(t)
	s := NewSession(10)
	s.Step()
	s.Apply(blinker)

	c.Assert(s.Name(), qt.Equals, "Blinker")
	c.Assert(s.Generation(), qt.Equals, 0)
	c.Assert(s.History().Len(), qt.Equals, 0)
	c.Assert(s.Cells().Cells(), qt.DeepEquals, blinker.Cells)
}

func TestSessionStep(t *testing.T) {
	c := qt.New(t)
	s := NewSession(1)
	s.Apply(blinker)
	start := s.Cells()

	s.Step()
	c.Assert(s.Generation(), qt.Equals, 1)
	c.Assert(s.History().Len(), qt.Equals, 1)
	c.Assert(s.History().At(0).Equal(start), qt.IsTrue)
	c.Assert(s.Cells().Equal(start), qt.IsFalse)

	s.Step()
	c.Assert(s.Generation(), qt.Equals, 2)
	c.Assert(s.History().Len(), qt.Equals, 1)
	c.Assert(s.Cells().Equal(start), qt.IsTrue)
}

func TestSessionStepEmpty(t *testing.T) {
	c := qt.New(t)
	s := NewSession(3)
	s.Step()
	c.Assert(s.Cells().Len(), qt.Equals, 0)
	c.Assert(s.Generation(), qt.Equals, 1)
}

func TestSessionToggle(t *testing.T) {
	c := qt.New(t)
	s := NewSession(3)
	cell := life.Cell{X: -3, Y: 8}
	before := s.Cells()

	c.Assert(s.Toggle(cell), qt.IsTrue)
	c.Assert(life.IsAlive(s.Cells(), cell), qt.IsTrue)
	c.Assert(before.Len(), qt.Equals, 0)

	c.Assert(s.Toggle(cell), qt.IsFalse)
	c.Assert(life.IsAlive(s.Cells(), cell), qt.IsFalse)
}

func TestSessionClear(t *testing.T) {
	c := qt.New(t)
	s := NewSession(3)
	s.Apply(blinker)
	s.Step()
	s.Clear()
	c.Assert(s.Cells().Len(), qt.Equals, 0)
	c.Assert(s.Generation(), qt.Equals, 0)
	c.Assert(s.History().Len(), qt.Equals, 0)
	c.Assert(s.Name(), qt.Equals, "")
}

func TestSessionParameters(t *testing.T) {
	c := qt.New(t)
	s := NewSession(3)
	s.Apply(blinker)
	s.Step()
	snap := s.Parameters()
	c.Assert(snap.Groups, qt.HasLen, 1)
	c.Assert(snap.Groups[0].Params, qt.DeepEquals, []Parameter{
		{Key: "generation", Label: "Generation", Type: ParamTypeInt, Value: "1"},
		{Key: "population", Label: "Population", Type: ParamTypeInt, Value: "3"},
	})
}
