package render

import "io"

// destKind identifies which of the four destination shapes a Dest value is.
type destKind int

const (
	destBuffer destKind = iota
	destChannel
	destManual
	destOther
)

// Dest selects how a Renderer's output bytes leave the library: into an
// in-memory buffer the driver owns, into a caller-supplied sink, into a
// caller-supplied window the driver requests refills for, or bypassing
// the driver's writer primitives entirely.
type Dest struct {
	kind destKind
	sink io.Writer // destChannel
	name string    // destOther: backend-chosen label, for diagnostics only
}

// BufferDest returns a destination that accumulates output in a
// driver-owned growable buffer, retrievable with Renderer.Bytes.
func BufferDest() Dest {
	return Dest{kind: destBuffer}
}

// ChannelDest returns a destination that writes flushed windows to sink
// as they fill, and the last partial window when End completes, in
// order, with no buffering beyond one window's worth.
func ChannelDest(sink io.Writer) Dest {
	return Dest{kind: destChannel, sink: sink}
}

// ManualDest returns a destination whose output window is supplied and
// refilled by the caller via Renderer.SetWindow, with Render returning
// Partial whenever the window fills.
func ManualDest() Dest {
	return Dest{kind: destManual}
}

// OtherDest returns an opaque destination: the backend manages its own
// output (e.g. drawing directly into a canvas element) and the driver's
// writer primitives are not used. name is a free-form label for
// diagnostics, not interpreted by the driver.
func OtherDest(name string) Dest {
	return Dest{kind: destOther, name: name}
}
