//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tm-sim/internal/app"
	"tm-sim/internal/config"
	"tm-sim/internal/logging"
	_ "tm-sim/internal/tape"
)

func main() {
	log := logging.WithRun(logging.ConfigureRuntime(), "tm-view")

	scale, rate, tps := 24, 8, 60
	cfg, err := config.Parse("tm-view", os.Args[1:], func(fs *flag.FlagSet) {
		fs.IntVar(&scale, "scale", scale, "pixel scale multiplier")
		fs.IntVar(&rate, "rate", rate, "machine steps per second")
		fs.IntVar(&tps, "tps", tps, "ticks per second")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	game, err := app.New(cfg, scale, rate, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build machine")
	}
	w, h := game.Size()

	ebiten.SetWindowTitle("tm-sim — " + cfg.Variant)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("view")
	}
}
