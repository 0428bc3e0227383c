package ui

import (
	"fmt"
	"strconv"

	"lifeee/internal/core"
	"lifeee/pkg/life"
)

// Row is one line of the parameter panel.
type Row struct {
	Label  string
	Value  string
	Header bool
}

// Rows flattens a snapshot into panel lines: a header per group followed by
// its parameters.
func Rows(snap core.ParameterSnapshot) []Row {
	var rows []Row
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		rows = append(rows, Row{Label: g.Name, Header: true})
		for _, p := range g.Params {
			rows = append(rows, Row{Label: p.Label, Value: p.Value})
		}
	}
	return rows
}

// GenerationLabel is the headline shown above the panel.
func GenerationLabel(gen int) string {
	return "Generation #" + strconv.Itoa(gen)
}

// KeyHelp lists the viewer's key bindings.
var KeyHelp = []string{
	"Space   play / pause",
	"N       single tick",
	"[ ]     previous / next pattern",
	"Enter   apply pattern",
	"+ -     speed",
	"C       clear",
	"S       random soup",
	"R       restart last pattern",
	"G       toggle grid",
	"H       toggle help",
	"B       toggle bounding box",
	"drag    pan",
	"wheel   zoom",
	"right   toggle cell",
	"Q Esc   quit",
}

func hoverLabel(c life.Cell, alive bool) string {
	state := "dead"
	if alive {
		state = "alive"
	}
	return fmt.Sprintf("(%d, %d) %s", c.X, c.Y, state)
}
