package core

import (
	"github.com/juju/loggo"

	"lifeee/pkg/lexicon"
	"lifeee/pkg/life"
)

var logger = loggo.GetLogger("lifeee.session")

// Session is the state of one viewer: the live cells, the generation count,
// recent generations for trails and the name of the last applied pattern.
type Session struct {
	cells      life.CellSet
	generation int
	history    *History
	pattern    string
}

// NewSession returns an empty session keeping historyDepth past generations.
func NewSession(historyDepth int) *Session {
	return &Session{
		cells:   life.NewCellSet(),
		history: NewHistory(historyDepth),
	}
}

// Name returns the name of the applied pattern, or "" for a hand-made one.
func (s *Session) Name() string { return s.pattern }

// Cells returns the current generation.
func (s *Session) Cells() life.CellSet { return s.cells }

// Generation returns how many steps were taken since the last Apply or Clear.
func (s *Session) Generation() int { return s.generation }

// History returns the recent generations.
func (s *Session) History() *History { return s.history }

// Apply replaces the cells with the term's pattern at the origin and starts
// counting generations again.
func (s *Session) Apply(t lexicon.Term) {
	cells := life.NewCellSet()
	for _, c := range t.Cells {
		cells = life.WithAlive(cells, c)
	}
	s.cells = cells
	s.generation = 0
	s.history.Clear()
	s.pattern = t.Name
	logger.Infof("applied %q (%d cells)", t.Name, cells.Len())
}

// Step advances one generation, remembering the previous one.
func (s *Session) Step() {
	s.history.Push(s.cells)
	before := s.cells.Len()
	s.cells = life.Tick(s.cells)
	s.generation++
	if before > 0 && s.cells.Len() == 0 {
		logger.Infof("population died out at generation %d", s.generation)
	}
	logger.Tracef("generation %d: %d cells", s.generation, s.cells.Len())
}

// Toggle flips c between alive and dead and reports its new state.
func (s *Session) Toggle(c life.Cell) bool {
	if life.IsAlive(s.cells, c) {
		s.cells = life.WithDead(s.cells, c)
		return false
	}
	s.cells = life.WithAlive(s.cells, c)
	return true
}

// Clear kills every cell.
func (s *Session) Clear() {
	s.cells = life.NewCellSet()
	s.generation = 0
	s.history.Clear()
	s.pattern = ""
	logger.Debugf("cleared")
}

// Parameters describes the session for HUD display.
func (s *Session) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "Life",
		Params: []Parameter{
			intParam("generation", "Generation", s.generation),
			intParam("population", "Population", s.cells.Len()),
		},
	}}}
}

var (
	_ Sim    = (*Session)(nil)
	_ Editor = (*Session)(nil)
)
