//go:build ebiten

package ui

import (
	"image/color"

	"vacuum-dfs/internal/core"
	"vacuum-dfs/internal/render"
	"vacuum-dfs/internal/room"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type visitedProvider interface {
	VisitedMask() []bool
}

type frontierProvider interface {
	Frontier() []room.Pos
}

// Overlay draws optional debugging visuals on top of the room: the visited
// mask (key 1) and the cells on the walk stack (key 2).
type Overlay struct {
	sim          core.Sim
	scale        int
	showVisited  bool
	showFrontier bool

	maskImg  *ebiten.Image
	maskBuf  []byte
	frontier []bool
}

var (
	visitedTint  = color.RGBA{R: 40, G: 90, B: 160, A: 90}
	frontierTint = color.RGBA{R: 250, G: 200, B: 60, A: 140}
)

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVisited = !o.showVisited
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFrontier = !o.showFrontier
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
		o.frontier = make([]bool, total)
	}

	if o.showVisited {
		if provider, ok := o.sim.(visitedProvider); ok {
			o.drawMask(screen, provider.VisitedMask(), visitedTint)
		}
	}
	if o.showFrontier {
		if provider, ok := o.sim.(frontierProvider); ok {
			clear(o.frontier)
			for _, p := range provider.Frontier() {
				idx := p.X*size.W + p.Y
				if idx >= 0 && idx < total {
					o.frontier[idx] = true
				}
			}
			o.drawMask(screen, o.frontier, frontierTint)
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []bool, tint color.RGBA) {
	if len(mask) != len(o.frontier) {
		return
	}
	render.MaskRGBA(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
