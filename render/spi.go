package render

import "seehuhn.de/go/vg/meta"

// SPI is the interface a Target's RenderFunc uses to drive a Renderer:
// the writer primitives, the renderer's configured limit and metadata,
// and its warn callback. It is documentation, not an access-control
// boundary — path.Path's Segments/Fold, path.EarcParams, and
// image.Image's Decompose/Visit are ordinary public API and remain
// reachable outside a RenderFunc; SPI simply bundles the parts a
// backend needs alongside the ones Go cannot hide in a separate
// package without also hiding them from every other caller.
type SPI struct {
	r *Renderer
}

// WriteByte writes a single output byte.
func (s *SPI) WriteByte(b byte) (Result, error) {
	return s.r.writeByte(b)
}

// Write writes as much of p as the current window has room for. A
// Partial result means only p[:n] was consumed; the backend must
// remember p[n:] and resume with it after the next Await.
func (s *SPI) Write(p []byte) (n int, res Result, err error) {
	return s.r.write(p)
}

// WriteBuf writes the l bytes of src starting at offset j.
func (s *SPI) WriteBuf(src []byte, j, l int) (n int, res Result, err error) {
	return s.r.writeBuf(src, j, l)
}

// WriteString writes s as a sequence of bytes.
func (s *SPI) WriteString(str string) (n int, res Result, err error) {
	return s.r.write([]byte(str))
}

// Remaining returns how many bytes the current window can still
// accept before it needs flushing or refilling.
func (s *SPI) Remaining() int {
	return s.r.win.remaining()
}

// Limit returns the renderer's configured output byte limit, or 0 for
// no limit.
func (s *SPI) Limit() int {
	return s.r.Limit()
}

// Meta returns the renderer's metadata map.
func (s *SPI) Meta() meta.Meta {
	return s.r.Meta()
}

// Warn reports a non-fatal condition through the renderer's warn
// callback. Rendering continues after Warn returns.
func (s *SPI) Warn(w Warning) {
	s.r.warn(w)
}
