//go:build ebiten

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/control"
	"github.com/sheikhrachel/gol-engine/utils"
)

func main() {
	flags := NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	config, err := utils.LoadConfig(flags.Config)
	if err != nil {
		log.Printf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}
	if flags.Turbo >= 0 {
		config.Turbo = flags.Turbo
	}

	ctrl, err := control.New(config)
	if err != nil {
		log.Fatal(err)
	}
	if err = ctrl.Randomize(config.RandomDensity); err != nil {
		log.Fatal(err)
	}

	game := newGame(ctrl, flags.Scale, config.RandomDensity)
	ebiten.SetWindowTitle("gol-engine")
	ebiten.SetTPS(flags.TPS)
	ebiten.SetWindowSize(config.Width*flags.Scale, config.Height*flags.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
