//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"powder/internal/app"
	"powder/internal/sims/powder"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := cfg.SimConfig()
	if !powder.KnownScene(simCfg.Scene) {
		log.Fatalf("unknown scene %q (scenes: %s)", simCfg.Scene, strings.Join(powder.SceneNames(), ", "))
	}
	world := powder.NewWithConfig(simCfg)
	world.Reset(0)

	game := app.New(world, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("powder — " + simCfg.Scene)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
