package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/grains/physics"
)

// Palette samples colors from an image mapped onto the world rectangle.
// Once a pile has settled, recoloring each body from the pixel under
// its resting position and replaying the spawn sequence reproduces the
// image inside the pile.
type Palette struct {
	pixels []physics.RGB
	width  int
	height int
	worldW float32
	worldH float32
}

// LoadPalette reads an image file and prepares it for world-space sampling.
func LoadPalette(path string, worldW, worldH float32) (*Palette, error) {
	img := rl.LoadImage(path)
	if img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("loading palette image %q", path)
	}
	defer rl.UnloadImage(img)

	colors := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(colors)

	pixels := make([]physics.RGB, len(colors))
	for i, c := range colors {
		pixels[i] = physics.RGB{R: c.R, G: c.G, B: c.B}
	}

	return &Palette{
		pixels: pixels,
		width:  int(img.Width),
		height: int(img.Height),
		worldW: worldW,
		worldH: worldH,
	}, nil
}

// ColorAt samples the pixel under world position (x, y). Positions
// outside the world clamp to the image edge.
func (p *Palette) ColorAt(x, y float32) physics.RGB {
	px := int(x / p.worldW * float32(p.width))
	py := int(y / p.worldH * float32(p.height))
	if px < 0 {
		px = 0
	} else if px >= p.width {
		px = p.width - 1
	}
	if py < 0 {
		py = 0
	} else if py >= p.height {
		py = p.height - 1
	}

	return p.pixels[px+py*p.width]
}

// Recolor maps each body's current position to an image pixel and
// returns the sampled colors in body order, for replaying the spawn
// sequence with image colors.
func (p *Palette) Recolor(bodies []physics.Body) []physics.RGB {
	colors := make([]physics.RGB, len(bodies))
	for i := range bodies {
		colors[i] = p.ColorAt(bodies[i].Pos.X, bodies[i].Pos.Y)
	}
	return colors
}
