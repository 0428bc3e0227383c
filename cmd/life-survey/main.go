// Command life-survey runs every catalog pattern in parallel and reports how
// each one evolves.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"text/tabwriter"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"
	"gopkg.in/yaml.v2"

	"lifeee/internal/app"
	"lifeee/internal/survey"
)

var logger = loggo.GetLogger("lifeee.cmd")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := gnuflag.NewFlagSet("life-survey", gnuflag.ContinueOnError)
	fs.SetOutput(stderr)
	lexPath := fs.String("lexicon", "", "lexicon file to load instead of the built-in catalog")
	gens := fs.Int("gens", 200, "generations to run each pattern")
	workers := fs.Int("workers", runtime.NumCPU(), "patterns simulated in parallel")
	format := fs.String("format", "text", "output format: text or yaml")
	logSpec := fs.String("log", "<root>=WARNING", "logging configuration")
	if err := fs.Parse(true, args); err != nil {
		return 2
	}
	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		fmt.Fprintf(stderr, "life-survey: %v\n", err)
		return 2
	}
	if *format != "text" && *format != "yaml" {
		fmt.Fprintf(stderr, "life-survey: unknown format %q\n", *format)
		return 2
	}
	if err := surveyCatalog(ctx, *lexPath, *gens, *workers, *format, stdout); err != nil {
		fmt.Fprintf(stderr, "life-survey: %v\n", err)
		return 1
	}
	return 0
}

func surveyCatalog(ctx context.Context, lexPath string, gens, workers int, format string, w io.Writer) error {
	lex, err := app.LoadLexicon(lexPath)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	terms := lex.Populated()
	logger.Infof("surveying %d terms for %d generations with %d workers", len(terms), gens, workers)
	results, err := survey.Run(ctx, terms, gens, workers)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	if format == "yaml" {
		data, err := yaml.Marshal(results)
		if err != nil {
			return errgo.Notef(err, "cannot marshal results")
		}
		_, err = w.Write(data)
		return errgo.Mask(err)
	}
	return writeTable(w, results)
}

func writeTable(w io.Writer, results []survey.Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tINITIAL\tFINAL\tPEAK\tPERIOD\tDISPLACEMENT")
	for _, r := range results {
		period, disp := "-", "-"
		switch {
		case r.DiedAt > 0:
			period = fmt.Sprintf("died at %d", r.DiedAt)
		case r.Period > 0:
			period = fmt.Sprint(r.Period)
			disp = fmt.Sprintf("(%d, %d)", r.DX, r.DY)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n", r.Name, r.Kind(), r.Initial, r.Final, r.Peak, period, disp)
	}
	return errgo.Mask(tw.Flush())
}
