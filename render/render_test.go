package render

import (
	"bytes"
	"errors"
	"testing"

	"seehuhn.de/go/vg/geom"
	"seehuhn.de/go/vg/image"
	"seehuhn.de/go/vg/path"
)

func redRenderable() Renderable {
	return Renderable{
		Size: geom.Size2{W: 10, H: 10},
		View: geom.Box2{Min: geom.Pt(0, 0), Max: geom.Pt(10, 10)},
		Img:  image.Const(geom.Color{R: 1, A: 1}),
	}
}

// invariant 7 / S5: a Manual destination, resumed across Partial
// results with a fresh small window each time, produces exactly the
// same byte stream as a Buffer destination given the same events.
func TestManualMatchesBuffer(t *testing.T) {
	bufR := New(NewDumpTarget(), BufferDest())
	for i := 0; i < 3; i++ {
		if _, err := bufR.Step(ImageEvent(redRenderable())); err != nil {
			t.Fatalf("buffer Step(Image): %v", err)
		}
	}
	if _, err := bufR.Step(EndEvent()); err != nil {
		t.Fatalf("buffer Step(End): %v", err)
	}
	want := bufR.Bytes()

	var got bytes.Buffer
	manR := New(NewDumpTarget(), ManualDest())
	window := make([]byte, 3) // deliberately tiny, forces many Partials
	manR.SetWindow(window)

	drain := func() {
		got.Write(window[:len(window)-manR.win.remaining()])
	}

	step := func(ev Event) {
		for {
			res, err := manR.Step(ev)
			if err != nil {
				t.Fatalf("manual Step(%v): %v", ev.Kind, err)
			}
			drain()
			// a fresh window after every drain, so no byte is read twice
			manR.SetWindow(window)
			if res == Ok {
				return
			}
			ev = AwaitEvent()
		}
	}

	for i := 0; i < 3; i++ {
		step(ImageEvent(redRenderable()))
	}
	step(EndEvent())

	if got.String() != string(want) {
		t.Fatalf("manual output diverged from buffer output\nmanual: %q\nbuffer: %q", got.String(), want)
	}
}

// invariant 8: a once-mode renderer rejects a second Image; a
// loop-mode renderer accepts arbitrarily many.
func TestOnceModeRejectsSecondImage(t *testing.T) {
	r := New(NewOnceDumpTarget(), BufferDest())
	if !r.Once() {
		t.Fatal("expected Once() to report true")
	}
	if _, err := r.Step(ImageEvent(redRenderable())); err != nil {
		t.Fatalf("first Image: %v", err)
	}
	if r.State() != StateAwaitingEnd {
		t.Fatalf("state = %v, want awaiting-end", r.State())
	}

	_, err := r.Step(ImageEvent(redRenderable()))
	if !errors.Is(err, ErrSingleImage) {
		t.Fatalf("second Image: got %v, want ErrSingleImage", err)
	}
}

// invariant 8 / S6: a once-mode renderer whose single Image parks
// under a Manual destination (Partial) must still land in
// awaiting-end once the parked render finishes, and a second Image
// must still be rejected — the lifecycle tracking must survive a
// Partial/Await detour, not just the synchronous Buffer path.
func TestOnceModeTracksAcrossManualPartial(t *testing.T) {
	r := New(NewOnceDumpTarget(), ManualDest())
	window := make([]byte, 3) // tiny: forces the single Image to park
	r.SetWindow(window)

	res, err := r.Step(ImageEvent(redRenderable()))
	if err != nil {
		t.Fatalf("Step(Image): %v", err)
	}
	if res != Partial {
		t.Fatalf("expected the tiny window to force Partial, got %v", res)
	}
	if r.State() != StateRendering {
		t.Fatalf("state = %v, want rendering", r.State())
	}

	for res == Partial {
		r.SetWindow(window)
		res, err = r.Step(AwaitEvent())
		if err != nil {
			t.Fatalf("Step(Await): %v", err)
		}
	}

	if r.State() != StateAwaitingEnd {
		t.Fatalf("state after parked image completes = %v, want awaiting-end", r.State())
	}

	_, err = r.Step(ImageEvent(redRenderable()))
	if !errors.Is(err, ErrSingleImage) {
		t.Fatalf("second Image after a parked first: got %v, want ErrSingleImage", err)
	}
}

func TestLoopModeAcceptsManyImages(t *testing.T) {
	r := New(NewDumpTarget(), BufferDest())
	for i := 0; i < 50; i++ {
		if _, err := r.Step(ImageEvent(redRenderable())); err != nil {
			t.Fatalf("image %d: %v", i, err)
		}
		if r.State() != StateAwaitingImage {
			t.Fatalf("state after image %d = %v, want awaiting-image", i, r.State())
		}
	}
	if _, err := r.Step(EndEvent()); err != nil {
		t.Fatalf("End: %v", err)
	}
	if r.State() != StateEnded {
		t.Fatal("expected Ended state after End")
	}
}

// Any event (Image, End or Await) issued after End fails with
// ErrEndRendered.
func TestEndRenderedRejectsEverything(t *testing.T) {
	r := New(NewDumpTarget(), BufferDest())
	if _, err := r.Step(EndEvent()); err != nil {
		t.Fatalf("End: %v", err)
	}
	if _, err := r.Step(ImageEvent(redRenderable())); !errors.Is(err, ErrEndRendered) {
		t.Fatalf("Image after End: got %v, want ErrEndRendered", err)
	}
	if _, err := r.Step(EndEvent()); !errors.Is(err, ErrEndRendered) {
		t.Fatalf("End after End: got %v, want ErrEndRendered", err)
	}
	if _, err := r.Step(AwaitEvent()); !errors.Is(err, ErrEndRendered) {
		t.Fatalf("Await after End: got %v, want ErrEndRendered", err)
	}
}

func TestAwaitExpectedWhenNotParked(t *testing.T) {
	r := New(NewDumpTarget(), BufferDest())
	if _, err := r.Step(AwaitEvent()); !errors.Is(err, ErrAwaitExpected) {
		t.Fatalf("Await before any image: got %v, want ErrAwaitExpected", err)
	}
}

// invariant 9: a warning never aborts rendering.
func TestWarningsDoNotAbortRendering(t *testing.T) {
	var warnings []Warning
	target := func(r *Renderer, dst Dest) (bool, RenderFunc) {
		return false, func(spi *SPI, ev Event) (Result, error) {
			if ev.Kind == EvImage {
				spi.Warn(UnsupportedCutWarning(path.AreaNonZero(), ev.Img.Img))
			}
			return Ok, nil
		}
	}
	r := New(target, BufferDest(), WithWarn(func(w Warning) { warnings = append(warnings, w) }))

	if _, err := r.Step(ImageEvent(redRenderable())); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if _, err := r.Step(EndEvent()); err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(warnings) != 1 || warnings[0].Kind != UnsupportedCut {
		t.Fatalf("warnings = %v, want one UnsupportedCut", warnings)
	}
}

func TestChannelDestWritesThrough(t *testing.T) {
	var sink bytes.Buffer
	r := New(NewDumpTarget(), ChannelDest(&sink))
	for i := 0; i < 5; i++ {
		if _, err := r.Step(ImageEvent(redRenderable())); err != nil {
			t.Fatalf("image %d: %v", i, err)
		}
	}
	if _, err := r.Step(EndEvent()); err != nil {
		t.Fatalf("End: %v", err)
	}
	if sink.Len() == 0 {
		t.Fatal("expected channel sink to receive bytes")
	}
}

func TestOtherDestRejectsWrites(t *testing.T) {
	r := New(NewDumpTarget(), OtherDest("canvas"))
	_, err := r.Step(ImageEvent(redRenderable()))
	if !errors.Is(err, ErrOtherDest) {
		t.Fatalf("got %v, want ErrOtherDest", err)
	}
}
