//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridstep/internal/app"
	"gridstep/internal/core"
	_ "gridstep/internal/rules/average"
	_ "gridstep/internal/rules/diffusion"
	_ "gridstep/internal/rules/moore"
	_ "gridstep/internal/rules/shortcut"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.N <= 0 {
		log.Fatalf("grid side must be positive, got %d", cfg.N)
	}
	rule, err := core.Lookup(cfg.Rule, nil)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, core.Names())
	}

	game, err := app.New(rule, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("gridstep: " + rule.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.N*cfg.Scale, cfg.N*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
