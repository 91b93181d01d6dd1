package geom

// Raster is an opaque raster sample buffer: a fixed physical size plus
// a function mapping normalized sample coordinates (u, v in [0,1]) to a
// color. Decoding actual image formats into a Raster is a backend
// concern and out of scope here.
type Raster struct {
	Size Size2
	At   func(u, v float64) Color
}

// Equal reports whether r and s have the same size and sampling
// function identity. Raster values are compared by reference for the
// function field since functions are not otherwise comparable.
func (r Raster) Equal(s Raster) bool {
	return r.Size == s.Size && sameFunc(r.At, s.At)
}

func sameFunc(a, b func(u, v float64) Color) bool {
	return funcPtr(a) == funcPtr(b)
}

// Compare defines a total order over Raster values: by Size (width
// then height), then by sampling-function identity. The function
// order is an arbitrary but stable token (its pointer value), not a
// semantic comparison of what the function computes.
func (r Raster) Compare(s Raster) int {
	switch {
	case r.Size.W < s.Size.W:
		return -1
	case r.Size.W > s.Size.W:
		return 1
	}
	switch {
	case r.Size.H < s.Size.H:
		return -1
	case r.Size.H > s.Size.H:
		return 1
	}
	pr, ps := funcPtr(r.At), funcPtr(s.At)
	switch {
	case pr < ps:
		return -1
	case pr > ps:
		return 1
	default:
		return 0
	}
}
