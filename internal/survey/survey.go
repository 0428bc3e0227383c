// Package survey runs catalog patterns headlessly and classifies how they
// evolve.
package survey

import (
	"context"
	"strconv"
	"strings"

	"github.com/juju/loggo"
	"golang.org/x/sync/errgroup"
	errgo "gopkg.in/errgo.v1"

	"lifeee/pkg/lexicon"
	"lifeee/pkg/life"
)

var logger = loggo.GetLogger("lifeee.survey")

// Result summarises the first Generations generations of one pattern.
type Result struct {
	Name        string `yaml:"name"`
	Generations int    `yaml:"generations"`
	Initial     int    `yaml:"initial"`
	Final       int    `yaml:"final"`
	Peak        int    `yaml:"peak"`

	// Period is the number of generations after which the pattern
	// repeats up to translation, or zero if it did not within
	// Generations. A still life has period 1.
	Period int `yaml:"period,omitempty"`
	// DX and DY give the displacement per period.
	DX int32 `yaml:"dx,omitempty"`
	DY int32 `yaml:"dy,omitempty"`

	// DiedAt is the generation at which the population reached zero.
	DiedAt int `yaml:"died_at,omitempty"`
}

// Kind classifies the result in a word.
func (r Result) Kind() string {
	switch {
	case r.DiedAt > 0:
		return "dies"
	case r.Period == 1 && r.DX == 0 && r.DY == 0:
		return "still life"
	case r.Period > 0 && (r.DX != 0 || r.DY != 0):
		return "spaceship"
	case r.Period > 0:
		return "oscillator"
	}
	return "unsettled"
}

type seen struct {
	gen    int
	origin life.Cell
}

// Analyze runs t for gens generations.
func Analyze(ctx context.Context, t lexicon.Term, gens int) (Result, error) {
	cells := t.CellSet()
	r := Result{
		Name:        t.Name,
		Generations: gens,
		Initial:     cells.Len(),
		Peak:        cells.Len(),
	}
	history := make(map[string]seen)
	record := func(gen int) {
		if r.Period > 0 {
			return
		}
		key, origin := normalize(cells)
		if prev, ok := history[key]; ok {
			r.Period = gen - prev.gen
			r.DX = origin.X - prev.origin.X
			r.DY = origin.Y - prev.origin.Y
			return
		}
		history[key] = seen{gen: gen, origin: origin}
	}

	record(0)
	for gen := 1; gen <= gens; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return r, errgo.Notef(err, "%s stopped at generation %d", t.Name, gen)
			}
		}
		cells = life.Tick(cells)
		r.Peak = max(r.Peak, cells.Len())
		if cells.Len() == 0 {
			r.DiedAt = gen
			break
		}
		record(gen)
	}
	r.Final = cells.Len()
	logger.Debugf("%s: %s after %d generations", t.Name, r.Kind(), gens)
	return r, nil
}

// normalize returns a key identifying s up to translation together with the
// top-left corner of its bounding box.
func normalize(s life.CellSet) (string, life.Cell) {
	lo, _, ok := s.Bounds()
	if !ok {
		return "", life.Cell{}
	}
	var b strings.Builder
	for _, c := range s.Cells() {
		b.WriteString(strconv.FormatInt(int64(c.X)-int64(lo.X), 10))
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(int64(c.Y)-int64(lo.Y), 10))
		b.WriteByte(';')
	}
	return b.String(), lo
}

// Run analyzes every term using at most workers goroutines. Results are in
// the order of terms.
func Run(ctx context.Context, terms []lexicon.Term, gens, workers int) ([]Result, error) {
	results := make([]Result, len(terms))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, t := range terms {
		g.Go(func() error {
			r, err := Analyze(ctx, t, gens)
			if err != nil {
				return errgo.Mask(err, errgo.Any)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
