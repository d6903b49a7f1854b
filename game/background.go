package game

import (
	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background tile size in pixels.
const backgroundCell = 16

// Perlin parameters: smoothness, frequency multiplier, octaves.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// Background renders a slowly drifting noise field behind the arena.
type Background struct {
	noise *perlin.Perlin
	w, h  int32
}

// NewBackground creates the background for the given surface size.
func NewBackground(w, h int32, seed int64) *Background {
	return &Background{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		w:     w,
		h:     h,
	}
}

// Resize adapts the background to a new surface size.
func (b *Background) Resize(w, h int32) {
	b.w = w
	b.h = h
}

// Draw fills the surface with noise-shaded tiles. t advances the noise
// through its third dimension for a slow drift.
func (b *Background) Draw(t float32) {
	z := float64(t) * 0.004

	for y := int32(0); y < b.h; y += backgroundCell {
		for x := int32(0); x < b.w; x += backgroundCell {
			n := b.noise.Noise3D(float64(x)*0.003, float64(y)*0.003, z)
			// n is roughly [-1, 1]; map to a dim blue-gray band.
			shade := uint8(14 + (n+1)*6)
			rl.DrawRectangle(x, y, backgroundCell, backgroundCell,
				rl.Color{R: shade, G: shade, B: shade + 8, A: 255})
		}
	}
}
