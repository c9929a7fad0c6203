//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"landform/internal/app"
	"landform/internal/gen"
	pcore "landform/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gcfg := gen.FamilyConfig(cfg.Family)
	gcfg.Width = cfg.W
	gcfg.Height = cfg.H
	if cfg.Seed >= 0 {
		gcfg.Seed = uint32(cfg.Seed)
	} else {
		gcfg.Seed = pcore.NewRNG(time.Now().UnixNano()).Uint32()
	}

	game, err := app.New(gcfg, cfg.Scale)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(gcfg.Width*cfg.Scale, gcfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
