package render

import "seehuhn.de/go/vg/image"

// NewDumpTarget returns a Target whose backend writes each image it
// receives as its image.Pretty output followed by a blank line. It exists to exercise
// and test the driver itself (window flushing, Partial/Await
// resumption, the lifecycle state machine) in the absence of a real
// output format in scope; once is false, so the backend accepts any
// number of Image events before End.
func NewDumpTarget() Target {
	return newDumpTarget(false)
}

// NewOnceDumpTarget is NewDumpTarget, but the backend accepts only a
// single Image before End.
func NewOnceDumpTarget() Target {
	return newDumpTarget(true)
}

func newDumpTarget(once bool) Target {
	return func(r *Renderer, dst Dest) (bool, RenderFunc) {
		var pending []byte

		fn := func(spi *SPI, ev Event) (Result, error) {
			switch ev.Kind {
			case EvImage:
				pending = []byte(image.Pretty(ev.Img.Img) + "\n")
			case EvEnd:
				return Ok, nil
			}

			n, res, err := spi.Write(pending)
			pending = pending[n:]
			return res, err
		}
		return once, fn
	}
}
