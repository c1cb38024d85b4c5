//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gridlines/internal/app"
	"gridlines/internal/sketch"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogLevel)
	gg.SetLogger(logger)

	s := sketch.NewWithConfig(cfg.SketchConfig())
	game := app.New(s, cfg.Preview, logger)
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("gridlines")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
