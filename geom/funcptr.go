package geom

import "reflect"

// funcPtr returns an identity token for a function value, used to give
// Raster.Equal a well-defined (if coarse) notion of equality despite Go
// not allowing direct comparison of non-nil function values.
func funcPtr(f func(u, v float64) Color) uintptr {
	if f == nil {
		return 0
	}
	return reflect.ValueOf(f).Pointer()
}
