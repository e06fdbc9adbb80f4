package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"backdrop/internal/app"
	"backdrop/internal/core"
	_ "backdrop/internal/sims/flow"
	_ "backdrop/internal/sims/flowers"
	_ "backdrop/internal/sims/rain"
	_ "backdrop/internal/sims/waves"
	"backdrop/internal/termview"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = termview.New(screen, ctrl).Run(ctx, cfg.TPS)
	stop()
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
