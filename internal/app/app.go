//go:build ebiten

package app

import (
	"fmt"
	"time"

	"landform/internal/core"
	"landform/internal/gen"
	"landform/internal/render"
	"landform/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generated map to the ebiten.Game interface. The viewer is
// static between regenerations: it only redraws the buffers the engine
// produced.
type Game struct {
	cfg gen.Config
	res *gen.Result

	painter *render.GridPainter
	overlay *ui.Overlay
	buf     []byte

	layer     core.Layer
	composite bool
	scale     int
	err       error
}

// New generates the initial map and constructs the viewer around it.
func New(cfg gen.Config, scale int) (*Game, error) {
	res, err := gen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	if scale < 1 {
		scale = 1
	}
	g := &Game{
		cfg:       cfg,
		res:       res,
		painter:   render.NewGridPainter(cfg.Width, cfg.Height),
		overlay:   ui.NewOverlay(scale),
		buf:       make([]byte, 4*cfg.Width*cfg.Height),
		composite: true,
		scale:     scale,
	}
	g.overlay.SetResult(res)
	g.refreshTitle()
	return g, nil
}

func (g *Game) regenerate() {
	res, err := gen.Generate(g.cfg)
	if err != nil {
		g.err = err
		return
	}
	g.res = res
	g.overlay.SetResult(res)
	g.refreshTitle()
}

func (g *Game) layerName() string {
	if g.composite {
		return "composite"
	}
	return g.layer.String()
}

func (g *Game) refreshTitle() {
	ebiten.SetWindowTitle(fmt.Sprintf("landform — %s seed=%d [%s]",
		g.cfg.Family, g.cfg.Seed, g.layerName()))
}

// Update handles viewer input: Q/Esc quit, L cycles layers, F cycles terrain
// families, S reseeds, R regenerates, O toggles the overlay.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if g.composite {
			g.composite = false
			g.layer = core.LayerElevation
		} else {
			g.layer = g.layer.Next()
			if g.layer == core.LayerElevation {
				g.composite = true
			}
		}
		g.refreshTitle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.nextFamily()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg.Seed = uint32(time.Now().UnixNano())
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	g.overlay.Update()
	return nil
}

// nextFamily switches to the following preset, keeping size and seed.
func (g *Game) nextFamily() {
	fams := gen.Families()
	for i, f := range fams {
		if f.Name == g.cfg.Family {
			next := gen.FamilyConfig(fams[(i+1)%len(fams)].Name)
			next.Width = g.cfg.Width
			next.Height = g.cfg.Height
			next.Seed = g.cfg.Seed
			g.cfg = next
			break
		}
	}
	g.regenerate()
}

// Draw renders the current layer and the settlement overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.composite {
		render.CompositeRGBA(g.res, g.buf)
	} else {
		render.LayerRGBA(g.res, g.layer, g.buf)
	}
	g.painter.Blit(screen, g.buf, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.res.Width * g.scale, g.res.Height * g.scale
}
