package sim

import "image/color"

// Palette exposes one color per allocated type code, indexed the same way
// as the display buffer. The renderer reads colors from here and nothing
// else; the engine never calls into rendering.
func (w *World) Palette() []color.RGBA {
	palette := make([]color.RGBA, w.reg.Len())
	for code := range palette {
		palette[code] = w.reg.Lookup(uint32(code)).Color()
	}
	return palette
}
