//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"lifeee/internal/app"
)

var logger = loggo.GetLogger("lifeee.cmd")

func main() {
	cfg := app.NewConfig()
	fs := gnuflag.NewFlagSet("lifeee", gnuflag.ExitOnError)
	cfg.Bind(fs)
	fs.Parse(true, os.Args[1:])

	if err := loggo.ConfigureLoggers(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "lifeee: bad --log value: %v\n", err)
		os.Exit(2)
	}
	settings, err := cfg.LoadSettings()
	if err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
	lex, err := app.LoadLexicon(cfg.Lexicon)
	if err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
	logger.Infof("loaded %d terms", lex.Len())

	game := app.New(lex, settings, cfg.Pattern)

	ebiten.SetWindowTitle("lifeee")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}
