// Package render drives a backend's translation of an image.Image tree
// into a byte stream, through a small event-driven state machine that
// stays correct whether output goes to an in-memory buffer, a streaming
// sink, or a caller-managed window refilled one chunk at a time.
package render

import (
	"bytes"
	"io"

	"seehuhn.de/go/vg/geom"
	"seehuhn.de/go/vg/image"
	"seehuhn.de/go/vg/meta"
)

// DefaultWindowSize is the output window size used for Buffer and
// Channel destinations; the configured limit does not change it.
const DefaultWindowSize = 64 * 1024

// Renderable bundles the image to draw with the page geometry a
// backend needs to place it: the output size and the portion of
// image-space that maps onto it.
type Renderable struct {
	Size geom.Size2
	View geom.Box2
	Img  image.Image
}

// RenderFunc is a backend's render step, reinvoked once per Image,
// Await or End event. It is a stateful closure: across a Partial
// result and the Await that resumes it, the function itself is the
// continuation, remembering how far it got through the current image
// in its captured variables. A target's own factory (see Target)
// builds a fresh RenderFunc per Renderer.
type RenderFunc func(spi *SPI, ev Event) (Result, error)

// Target builds a backend for r writing to dst. It returns once,
// reporting whether the backend accepts at most a single Image before
// End (Once) or any number of them (Loop), and the RenderFunc that
// will drive every subsequent event.
type Target func(r *Renderer, dst Dest) (once bool, fn RenderFunc)

// EventKind distinguishes the three events a Renderer accepts.
type EventKind int

const (
	EvAwait EventKind = iota
	EvImage
	EvEnd
)

// Event is one input to Renderer.Step. Img is meaningful only for
// EvImage.
type Event struct {
	Kind EventKind
	Img  Renderable
}

// AwaitEvent resumes a parked render after its window has been refilled.
func AwaitEvent() Event { return Event{Kind: EvAwait} }

// ImageEvent submits r for rendering.
func ImageEvent(r Renderable) Event { return Event{Kind: EvImage, Img: r} }

// EndEvent finalizes the renderer; no further Image events are valid
// afterwards.
func EndEvent() Event { return Event{Kind: EvEnd} }

// Renderer drives one backend invocation from construction to End. A
// Renderer is not safe for concurrent use: events must be issued one
// at a time, each waited for before the next is issued, matching the
// single-threaded continuation model a backend's RenderFunc assumes.
type Renderer struct {
	dest  Dest
	once  bool
	state State
	fn    RenderFunc

	limit int
	warn  func(Warning)
	meta  meta.Meta

	win window

	// pendingOnceImage is set when a once-mode renderer's single Image
	// parks (Partial) and cleared when it finally completes. It lets
	// Step tell, on the Ok that resumes a parked render via Await,
	// whether that render was the once-mode Image (→ StateAwaitingEnd)
	// as opposed to some other event.
	pendingOnceImage bool
}

// Option configures a Renderer at construction.
type Option func(*Renderer)

// WithLimit sets the output byte budget reported to the backend through
// SPI.Limit; zero (the default) means no limit. The driver itself does
// not enforce it.
func WithLimit(n int) Option {
	return func(r *Renderer) { r.limit = n }
}

// WithWarn installs a callback invoked for every Warning a backend
// reports. The default callback discards warnings.
func WithWarn(f func(Warning)) Option {
	return func(r *Renderer) { r.warn = f }
}

// WithMeta attaches document/rendering metadata, retrievable by the
// backend through SPI.Meta.
func WithMeta(m meta.Meta) Option {
	return func(r *Renderer) { r.meta = m }
}

// New builds a Renderer for target writing to dst.
func New(target Target, dst Dest, opts ...Option) *Renderer {
	r := &Renderer{
		dest:  dst,
		state: StateAwaitingImage,
		warn:  func(Warning) {},
		meta:  meta.Empty,
	}
	for _, o := range opts {
		o(r)
	}
	r.win.init(dst)
	once, fn := target(r, dst)
	r.once = once
	r.fn = fn
	return r
}

// State returns the renderer's current lifecycle state.
func (r *Renderer) State() State { return r.state }

// Dest returns the renderer's destination.
func (r *Renderer) Dest() Dest { return r.dest }

// DstRem returns the number of bytes remaining in the current output
// window before it needs flushing (Buffer/Channel) or refilling
// (Manual).
func (r *Renderer) DstRem() int { return r.win.remaining() }

// Once reports whether this renderer accepts at most one Image.
func (r *Renderer) Once() bool { return r.once }

// Limit returns the configured output byte limit, or 0 for no limit.
func (r *Renderer) Limit() int { return r.limit }

// Meta returns the renderer's metadata map.
func (r *Renderer) Meta() meta.Meta { return r.meta }

// Bytes returns the bytes flushed so far, for a Buffer destination.
// The window is flushed whenever it fills and once more when End
// completes, so after End this is the whole output. It is a programming error to call this for any other
// destination kind.
func (r *Renderer) Bytes() []byte {
	if r.dest.kind != destBuffer {
		panic("render: Bytes is only valid for a Buffer destination")
	}
	return r.win.out.Bytes()
}

// SetWindow installs a fresh output window for a Manual destination,
// to be used for the Await that resumes a Partial result. It is a
// programming error to call this for any other destination kind.
func (r *Renderer) SetWindow(buf []byte) {
	if r.dest.kind != destManual {
		panic("render: SetWindow is only valid for a Manual destination")
	}
	r.win.buf = buf
	r.win.pos = 0
	r.win.max = len(buf)
}

// Step advances the renderer by one event, enforcing the lifecycle
// state machine before handing the event to the backend.
func (r *Renderer) Step(ev Event) (Result, error) {
	switch r.state {
	case StateEnded:
		return Ok, ErrEndRendered

	case StateRendering:
		if ev.Kind != EvAwait {
			return Ok, ErrAwaitExpected
		}

	case StateAwaitingEnd:
		switch ev.Kind {
		case EvEnd:
			// handled below
		case EvImage:
			return Ok, ErrSingleImage
		default:
			return Ok, ErrAwaitExpected
		}

	case StateAwaitingImage:
		if ev.Kind == EvAwait {
			return Ok, ErrAwaitExpected
		}
	}

	spi := &SPI{r: r}
	res, err := r.fn(spi, ev)
	if err != nil {
		return res, err
	}

	switch {
	case res == Partial:
		if ev.Kind == EvImage && r.once {
			r.pendingOnceImage = true
		}
		r.state = StateRendering
	case ev.Kind == EvEnd:
		r.pendingOnceImage = false
		r.state = StateEnded
		// hand the window's last, partly filled contents to a Buffer or
		// Channel destination; a no-op for Manual and Other.
		if err := r.win.flush(); err != nil {
			return res, err
		}
	case (ev.Kind == EvImage && r.once) || r.pendingOnceImage:
		r.pendingOnceImage = false
		r.state = StateAwaitingEnd
	default:
		r.state = StateAwaitingImage
	}
	return res, nil
}

// window holds the driver's output window: a Buffer/Channel
// destination owns a fixed-size internal buffer that gets flushed and
// reused, while a Manual destination's window is whatever slice the
// caller last installed with SetWindow.
type window struct {
	buf []byte
	pos int
	max int

	out  *bytes.Buffer // destBuffer
	sink io.Writer     // destChannel
}

func (w *window) init(dst Dest) {
	switch dst.kind {
	case destBuffer:
		w.out = &bytes.Buffer{}
		w.buf = make([]byte, DefaultWindowSize)
		w.max = len(w.buf)
	case destChannel:
		w.sink = dst.sink
		w.buf = make([]byte, DefaultWindowSize)
		w.max = len(w.buf)
	case destManual:
		// buf/max installed later via Renderer.SetWindow.
	case destOther:
		// no window: the backend does not use the writer primitives.
	}
}
