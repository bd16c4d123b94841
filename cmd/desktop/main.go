//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/desktop"
)

func main() {
	cfg := desktop.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	params := cfg.Params()
	ctl, err := desktop.NewController(log, params, cfg.Placer())
	if err != nil {
		log.Fatal("unable to create board: ", err)
	}

	ebiten.SetWindowTitle("minesweeper")
	ebiten.SetWindowSize(desktop.ScreenSize(params))

	if err := ebiten.RunGame(desktop.NewGame(ctl)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
