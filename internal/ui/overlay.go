//go:build ebiten

package ui

import (
	"image/color"

	"landform/internal/gen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	roadColor = color.RGBA{R: 140, G: 96, B: 54, A: 255}
	siteColor = color.RGBA{R: 214, G: 64, B: 48, A: 255}
)

// Overlay draws settlement sites and road edges on top of the base map.
type Overlay struct {
	res   *gen.Result
	scale int
	show  bool
}

// NewOverlay constructs an overlay for the given pixel scale.
func NewOverlay(scale int) *Overlay {
	if scale < 1 {
		scale = 1
	}
	return &Overlay{scale: scale, show: true}
}

// SetResult points the overlay at a freshly generated map.
func (o *Overlay) SetResult(res *gen.Result) { o.res = res }

// Update handles the overlay toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.show = !o.show
	}
}

// Draw renders road edges first, then settlement markers on top.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.res == nil {
		return
	}
	s := float32(o.scale)
	w := o.res.Width
	for _, e := range o.res.Roads {
		ax := (float32(int(e.A)%w) + 0.5) * s
		ay := (float32(int(e.A)/w) + 0.5) * s
		bx := (float32(int(e.B)%w) + 0.5) * s
		by := (float32(int(e.B)/w) + 0.5) * s
		vector.StrokeLine(screen, ax, ay, bx, by, 1, roadColor, true)
	}
	for _, st := range o.res.Settlements {
		cx := (float32(st.X) + 0.5) * s
		cy := (float32(st.Y) + 0.5) * s
		r := (0.5 + float32(st.Size)*0.35) * s
		vector.DrawFilledCircle(screen, cx, cy, r, siteColor, true)
	}
}
