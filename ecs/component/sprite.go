package component

import "image/color"

// Sprite is the debug-rect render state. Facing drives the mirroring of
// melee trigger areas, so it lives here rather than in the render system.
type Sprite struct {
	Width, Height float64
	Color         color.RGBA
	FacingLeft    bool
}

var SpriteComponent = NewComponent[Sprite]()
