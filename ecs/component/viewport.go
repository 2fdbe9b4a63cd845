package component

import "github.com/jakecoffman/cp"

// Viewport stores the playfield size in pixels. The origin is the top-left
// corner and y grows downward.
type Viewport struct {
	Width  float64
	Height float64
}

var ViewportComponent = NewComponent[Viewport]()

// Limit returns the largest top-left coordinate a square of the given size can
// occupy while staying fully inside the viewport.
func (v Viewport) Limit(size float64) cp.Vector {
	return cp.Vector{X: v.Width - size, Y: v.Height - size}
}
