//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"backdrop/internal/app"
	"backdrop/internal/core"
	_ "backdrop/internal/sims/flow"
	_ "backdrop/internal/sims/flowers"
	_ "backdrop/internal/sims/rain"
	_ "backdrop/internal/sims/waves"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	tuning, err := app.LoadTuning(cfg.Tuning)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	tuning, err = tuning.Apply(cfg.Set)
	if err != nil {
		log.Fatalf("apply overrides: %v", err)
	}
	ctrl, err := core.NewController(core.Kind(cfg.Anim), tuning, cfg.Seed)
	if err != nil {
		log.Fatalf("start %q: %v (available: %v)", cfg.Anim, err, core.Kinds())
	}

	game := app.New(ctrl, cfg)

	ebiten.SetWindowTitle("backdrop")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
