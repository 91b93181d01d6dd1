package render

import "errors"

// ErrOtherDest is returned if a backend calls a writer primitive while
// rendering to an Other destination, which carries no window at all.
var ErrOtherDest = errors.New("render: writer primitives are not available for an Other destination")

// flush hands the window's filled prefix to the destination's backing
// store and resets pos to 0. For a Manual or Other destination there
// is no backing store to flush to: flush does nothing and returns nil,
// since a full Manual window is drained by the caller via SetWindow,
// not by the driver.
func (w *window) flush() error {
	switch {
	case w.out != nil:
		w.out.Write(w.buf[:w.pos])
		w.pos = 0
		return nil
	case w.sink != nil:
		_, err := w.sink.Write(w.buf[:w.pos])
		w.pos = 0
		return err
	default:
		return nil
	}
}

// remaining returns the number of bytes the window can still accept
// before it needs flushing (Buffer/Channel) or refilling (Manual).
func (w *window) remaining() int {
	return w.max - w.pos
}

// writeByte writes a single byte into r's window, flushing (or, for a
// Manual destination, parking) when the window fills.
func (r *Renderer) writeByte(b byte) (Result, error) {
	if r.dest.kind == destOther {
		return Ok, ErrOtherDest
	}
	if r.win.remaining() == 0 {
		if r.dest.kind == destManual {
			return Partial, nil
		}
		if err := r.win.flush(); err != nil {
			return Ok, err
		}
	}
	r.win.buf[r.win.pos] = b
	r.win.pos++
	return Ok, nil
}

// write copies as much of p into r's window as fits, flushing
// (Buffer/Channel) or parking (Manual) as the window fills, and
// returns the number of bytes actually consumed along with the
// resulting Result. A Partial result means p[n:] remains to be
// written once the caller refills the window and resumes with Await.
func (r *Renderer) write(p []byte) (n int, res Result, err error) {
	if r.dest.kind == destOther {
		return 0, Ok, ErrOtherDest
	}
	for n < len(p) {
		room := r.win.remaining()
		if room == 0 {
			if r.dest.kind == destManual {
				return n, Partial, nil
			}
			if err := r.win.flush(); err != nil {
				return n, Ok, err
			}
			room = r.win.remaining()
		}
		k := len(p) - n
		if k > room {
			k = room
		}
		copy(r.win.buf[r.win.pos:], p[n:n+k])
		r.win.pos += k
		n += k
	}
	return n, Ok, nil
}

// writeBuf writes the l bytes of src starting at offset j, the
// "writebuf" primitive: a convenience over write for callers holding
// a larger scratch buffer than they want to write in one go.
func (r *Renderer) writeBuf(src []byte, j, l int) (n int, res Result, err error) {
	return r.write(src[j : j+l])
}
