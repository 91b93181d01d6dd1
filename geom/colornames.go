package geom

import "golang.org/x/image/colornames"

// Named looks up a CSS/SVG color name (e.g. "cornflowerblue") and
// returns the corresponding opaque Color. The second return value is
// false if name is not a known color name.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	r, g, b, a := c.RGBA()
	return Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}, true
}
