package ui

import (
	"bytes"
	"context"
	"image"
	"testing"
	"time"

	"golang.org/x/mobile/event/touch"

	"github.com/example/gradframe/internal/editor"
)

func TestViewRectIsSquareAboveHUD(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          image.Rectangle
	}{
		{"square window", 800, 800 + hudHeight, image.Rect(0, 0, 800, 800)},
		{"wide window", 1000, 600 + hudHeight, image.Rect(200, 0, 800, 600)},
		{"tall window", 600, 1000, image.Rect(0, 0, 600, 600)},
		{"degenerate", 0, 0, image.Rect(0, 0, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := viewRect(tt.width, tt.height)
			if got != tt.want {
				t.Errorf("viewRect(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
			if got.Dx() != got.Dy() {
				t.Errorf("viewRect is not square: %v", got)
			}
		})
	}
}

func TestNewAppliesPhoto(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	e := New(WithPhoto(img))
	if e.state.Scale == 1 {
		t.Error("photo was not fitted on load")
	}
	tr := e.transform()
	if tr.OffsetX != 0 || tr.OffsetY != 0 {
		t.Errorf("initial offsets = (%v, %v), want centred", tr.OffsetX, tr.OffsetY)
	}
}

func TestCompositeIgnoresLaterStateChanges(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	e := New(WithPhoto(img))
	ctx := context.Background()

	tr := e.transform()
	want, err := e.composite(ctx, img, tr, false)
	if err != nil {
		t.Fatalf("composite() error = %v", err)
	}

	// Keep editing after the snapshot was taken; a render from the snapshot
	// must not see any of it.
	e.state.ZoomBy(2)
	e.state.PanBy(50, 50)
	e.shadow = true

	got, err := e.composite(ctx, img, tr, false)
	if err != nil {
		t.Fatalf("composite() error = %v", err)
	}
	if !bytes.Equal(want.Pix, got.Pix) {
		t.Error("composite from the same snapshot changed after live state mutation")
	}
}

func TestTouchEndStopsGesture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	e := New(WithPhoto(img))

	e.handleTouch(touch.TypeBegin, 1, editor.Point{X: 100, Y: 400})
	e.handleTouch(touch.TypeBegin, 2, editor.Point{X: 300, Y: 400})
	e.handleTouch(touch.TypeMove, 2, editor.Point{X: 500, Y: 400})

	scale := e.state.Scale
	offX, offY := e.state.OffsetX, e.state.OffsetY

	// One finger lifts; the survivor must not pan or zoom until a fresh
	// contact begins.
	e.handleTouch(touch.TypeEnd, 1, editor.Point{X: 100, Y: 400})
	e.handleTouch(touch.TypeMove, 2, editor.Point{X: 200, Y: 200})

	if e.state.Scale != scale {
		t.Errorf("Scale = %v after touch end, want %v", e.state.Scale, scale)
	}
	if e.state.OffsetX != offX || e.state.OffsetY != offY {
		t.Errorf("offsets = (%v, %v) after touch end, want (%v, %v)",
			e.state.OffsetX, e.state.OffsetY, offX, offY)
	}

	// A fresh contact restarts the drag.
	e.handleTouch(touch.TypeEnd, 2, editor.Point{X: 200, Y: 200})
	e.handleTouch(touch.TypeBegin, 3, editor.Point{X: 200, Y: 200})
	e.handleTouch(touch.TypeMove, 3, editor.Point{X: 230, Y: 210})
	if e.state.OffsetX != offX+30 || e.state.OffsetY != offY+10 {
		t.Errorf("offsets = (%v, %v) after new drag, want (%v, %v)",
			e.state.OffsetX, e.state.OffsetY, offX+30, offY+10)
	}
}

func TestTouchPinchUsesFirstTwoContacts(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 400))
	e := New(WithPhoto(img))
	scale := e.state.Scale

	e.handleTouch(touch.TypeBegin, 1, editor.Point{X: 100, Y: 400})
	e.handleTouch(touch.TypeBegin, 2, editor.Point{X: 300, Y: 400})
	e.handleTouch(touch.TypeBegin, 3, editor.Point{X: 700, Y: 700})
	e.handleTouch(touch.TypeMove, 2, editor.Point{X: 500, Y: 400})

	if got, want := e.state.Scale, scale*2; got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}

	// Moving the third contact does not disturb the pinch.
	prev := e.state.Scale
	e.handleTouch(touch.TypeMove, 3, editor.Point{X: 100, Y: 100})
	if e.state.Scale != prev {
		t.Errorf("Scale = %v after extra-contact move, want %v", e.state.Scale, prev)
	}
}

func TestFrameRepaintScheduledOnce(t *testing.T) {
	e := New()
	calls := make(chan struct{}, 2)
	notify := func() { calls <- struct{}{} }

	e.scheduleFrameRepaint(notify)
	e.scheduleFrameRepaint(notify)

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("frame waiter never fired")
	}
	select {
	case <-calls:
		t.Fatal("more than one frame waiter fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNewWithoutPhoto(t *testing.T) {
	e := New()
	if e.frame == nil {
		t.Fatal("default frame not set")
	}
	if e.state.Scale != 1 {
		t.Errorf("Scale = %v before any photo", e.state.Scale)
	}
}
