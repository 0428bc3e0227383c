package ui

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"lifeee/internal/core"
	"lifeee/pkg/life"
)

func TestRows(t *testing.T) {
	c := qt.New(t)
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Life", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "4"},
			{Key: "population", Label: "Population", Value: "5"},
		}},
		{Name: "Empty"},
		{Name: "View", Params: []core.Parameter{
			{Key: "speed", Label: "Speed", Value: "3"},
		}},
	}}
	c.Assert(Rows(snap), qt.DeepEquals, []Row{
		{Label: "Life", Header: true},
		{Label: "Generation", Value: "4"},
		{Label: "Population", Value: "5"},
		{Label: "View", Header: true},
		{Label: "Speed", Value: "3"},
	})
	c.Assert(Rows(core.ParameterSnapshot{}), qt.HasLen, 0)
}

func TestGenerationLabel(t *testing.T) {
	c := qt.New(t)
	c.Assert(GenerationLabel(0), qt.Equals, "Generation #0")
	c.Assert(GenerationLabel(1234), qt.Equals, "Generation #1234")
}

func TestHoverLabel(t *testing.T) {
	c := qt.New(t)
	c.Assert(hoverLabel(life.Cell{X: -3, Y: 7}, true), qt.Equals, "(-3, 7) alive")
	c.Assert(hoverLabel(life.Cell{}, false), qt.Equals, "(0, 0) dead")
}
