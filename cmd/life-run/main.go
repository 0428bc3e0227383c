// Command life-run runs a catalog pattern headlessly and prints it as text.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"lifeee/internal/app"
	"lifeee/internal/render"
	"lifeee/pkg/life"
)

var logger = loggo.GetLogger("lifeee.cmd")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := gnuflag.NewFlagSet("life-run", gnuflag.ContinueOnError)
	fs.SetOutput(stderr)
	pattern := fs.String("pattern", "Glider", "catalog term to run")
	lexPath := fs.String("lexicon", "", "lexicon file to load instead of the built-in catalog")
	gens := fs.Int("gens", 10, "number of generations to run")
	every := fs.Int("every", 1, "print the pattern every this many generations")
	list := fs.Bool("list", false, "list the populated catalog terms and exit")
	soup := fs.Int("soup", 0, "run a random soup of this size instead of a catalog term")
	seed := fs.Int64("seed", 1, "seed for --soup")
	logSpec := fs.String("log", "<root>=WARNING", "logging configuration")
	if err := fs.Parse(true, args); err != nil {
		return 2
	}
	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		fmt.Fprintf(stderr, "life-run: %v\n", err)
		return 2
	}
	if *gens < 0 || *every < 1 || *soup < 0 {
		fmt.Fprintln(stderr, "life-run: --gens and --soup must be non-negative and --every positive")
		return 2
	}

	lex, err := app.LoadLexicon(*lexPath)
	if err != nil {
		fmt.Fprintf(stderr, "life-run: %v\n", err)
		return 1
	}
	if *list {
		for _, t := range lex.Populated() {
			w, h := t.Size()
			fmt.Fprintf(stdout, "%-20s %3dx%-3d %s\n", t.Name, w, h, strings.Join(t.Tags, ", "))
		}
		return 0
	}

	t, ok := lex.Term(*pattern)
	if *soup > 0 {
		t, ok = app.SoupTerm(*seed, int32(*soup)), true
	}
	if !ok {
		fmt.Fprintf(stderr, "life-run: no term %q in the catalog\n", *pattern)
		return 1
	}
	if t.Empty() {
		fmt.Fprintf(stderr, "life-run: term %q has no pattern\n", *pattern)
		return 1
	}
	logger.Infof("running %q for %d generations", t.Name, *gens)

	cells := t.CellSet()
	for gen := 0; ; gen++ {
		fmt.Fprintf(stdout, "Generation #%d: population %d\n", gen, cells.Len())
		if gen%*every == 0 || gen == *gens {
			fmt.Fprint(stdout, render.ASCII(cells))
			fmt.Fprintln(stdout)
		}
		if gen == *gens {
			break
		}
		cells = life.Tick(cells)
	}
	return 0
}
