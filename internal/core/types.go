package core

import (
	"lifeee/pkg/lexicon"
	"lifeee/pkg/life"
)

// Sim defines what the viewer needs from a running simulation.
type Sim interface {
	Name() string
	Step()
	Cells() life.CellSet
	Generation() int
	History() *History
}

// Editor is implemented by simulations whose cells can be changed by hand.
type Editor interface {
	Apply(t lexicon.Term)
	Toggle(c life.Cell) bool
	Clear()
}
