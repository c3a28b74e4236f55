// Package editor holds the viewport transform state for a loaded photo and
// the gesture handlers that mutate it. It is free of any rendering or UI
// dependency so the widget logic can be exercised headlessly.
package editor

import (
	"image"
	"math"
)

const (
	// DefaultViewportSize is the internal edge length of the square editing
	// canvas in pixels. The on-screen size may differ; input coordinates are
	// rescaled with MapToViewport.
	DefaultViewportSize = 800

	// WheelZoomIn and WheelZoomOut are the per-event scale multipliers for
	// wheel and keyboard zoom. Applied once per event regardless of the
	// reported wheel delta.
	WheelZoomIn  = 1.07
	WheelZoomOut = 0.93

	// ArrowStep is the pan distance in viewport pixels for one arrow key press.
	ArrowStep = 10

	// FitMargin shrinks the cover-fit scale slightly so the photo sits inside
	// the frame with a little breathing room.
	FitMargin = 0.95

	// MinScale and MaxScale bound the zoom range. Without a floor a run of
	// zoom-out events collapses the photo to a degenerate invisible render.
	MinScale = 0.01
	MaxScale = 100
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// State tracks the loaded photo and its placement inside the viewport.
//
// OffsetX and OffsetY are the displacement of the photo's centre from the
// viewport centre, in viewport pixels. Scale multiplies the photo's native
// dimensions. The remaining fields track an in-progress drag or pinch and are
// reset when the gesture ends.
type State struct {
	OffsetX float64
	OffsetY float64
	Scale   float64

	img     image.Image
	imgW    int
	imgH    int
	dragging bool
	last     Point
	// pinchDist is the inter-touch distance observed by the previous
	// two-finger event, or 0 when no pinch is in progress.
	pinchDist float64

	viewport int
}

// New returns a State for a square viewport with the given internal edge
// length. Sizes below 1 fall back to DefaultViewportSize.
func New(viewport int) *State {
	if viewport < 1 {
		viewport = DefaultViewportSize
	}
	return &State{Scale: 1, viewport: viewport}
}

// Viewport returns the internal edge length of the square canvas.
func (s *State) Viewport() int { return s.viewport }

// Image returns the current photo, or nil when none is loaded.
func (s *State) Image() image.Image { return s.img }

// HasImage reports whether a photo is loaded.
func (s *State) HasImage() bool { return s.img != nil }

// Dragging reports whether a single-pointer drag is in progress.
func (s *State) Dragging() bool { return s.dragging }

// SetImage replaces the photo and recomputes the canonical fit-and-center
// placement: the photo covers the viewport with a FitMargin border and the
// offsets return to zero.
func (s *State) SetImage(img image.Image) {
	s.img = img
	b := img.Bounds()
	s.imgW = b.Dx()
	s.imgH = b.Dy()
	s.fitAndCenter()
	s.dragging = false
	s.pinchDist = 0
}

// Fit restores the canonical fit-and-center placement for the current photo.
// It is a no-op when no photo is loaded.
func (s *State) Fit() {
	if s.img == nil {
		return
	}
	s.fitAndCenter()
}

func (s *State) fitAndCenter() {
	v := float64(s.viewport)
	zx := v / float64(s.imgW)
	zy := v / float64(s.imgH)
	z := zx
	if zy > z {
		z = zy
	}
	s.Scale = clampScale(z * FitMargin)
	s.OffsetX = 0
	s.OffsetY = 0
}

// Reset clears the photo and returns every transform field to its zero-value
// default.
func (s *State) Reset() {
	s.img = nil
	s.imgW = 0
	s.imgH = 0
	s.OffsetX = 0
	s.OffsetY = 0
	s.Scale = 1
	s.dragging = false
	s.last = Point{}
	s.pinchDist = 0
}

// PointerDown begins a drag at the given viewport position.
func (s *State) PointerDown(p Point) {
	if s.img == nil {
		return
	}
	s.last = p
	s.dragging = true
}

// PointerMove pans by the motion since the previous pointer event. Deltas are
// incremental: every move event contributes exactly the distance travelled
// since the last one, so the total pan equals the sum of the deltas no matter
// how the motion is split across events.
func (s *State) PointerMove(p Point) {
	if s.img == nil || !s.dragging {
		return
	}
	s.OffsetX += p.X - s.last.X
	s.OffsetY += p.Y - s.last.Y
	s.last = p
}

// PointerUp ends the drag.
func (s *State) PointerUp() {
	s.dragging = false
}

// TouchStart begins a drag for a single contact or a pinch for two. Starting
// a pinch cancels any drag in progress.
func (s *State) TouchStart(pts []Point) {
	if s.img == nil {
		return
	}
	switch len(pts) {
	case 1:
		s.PointerDown(pts[0])
	case 2:
		s.dragging = false
		s.pinchDist = pts[0].Dist(pts[1])
	}
}

// TouchMove continues a drag or a pinch. Pinch zoom is ratio based: each
// event multiplies the scale by the change in finger separation since the
// previous event, so the net zoom is the ordered product of the per-event
// ratios.
func (s *State) TouchMove(pts []Point) {
	if s.img == nil {
		return
	}
	switch len(pts) {
	case 1:
		s.PointerMove(pts[0])
	case 2:
		d := pts[0].Dist(pts[1])
		if s.pinchDist > 0 && d > 0 {
			s.Scale = clampScale(s.Scale * (d / s.pinchDist))
		}
		s.pinchDist = d
	}
}

// TouchEnd clears both drag and pinch tracking.
func (s *State) TouchEnd() {
	s.dragging = false
	s.pinchDist = 0
}

// Wheel zooms by one fixed step. zoomIn selects the direction; the magnitude
// of the underlying wheel delta is ignored.
func (s *State) Wheel(zoomIn bool) {
	if s.img == nil {
		return
	}
	if zoomIn {
		s.ZoomBy(WheelZoomIn)
	} else {
		s.ZoomBy(WheelZoomOut)
	}
}

// ZoomBy multiplies the scale by factor, clamped to [MinScale, MaxScale].
func (s *State) ZoomBy(factor float64) {
	if s.img == nil {
		return
	}
	s.Scale = clampScale(s.Scale * factor)
}

// PanBy translates the photo by (dx, dy) viewport pixels.
func (s *State) PanBy(dx, dy float64) {
	if s.img == nil {
		return
	}
	s.OffsetX += dx
	s.OffsetY += dy
}

func clampScale(z float64) float64 {
	if z < MinScale {
		return MinScale
	}
	if z > MaxScale {
		return MaxScale
	}
	return z
}

// MapToViewport converts a position in displayed (on-screen) pixels into the
// canvas's internal coordinate space. The drawing surface has a fixed logical
// resolution decoupled from its rendered size, so each axis is rescaled
// independently by internal/displayed.
func MapToViewport(x, y float64, displayW, displayH, internal int) Point {
	if displayW < 1 || displayH < 1 {
		return Point{X: x, Y: y}
	}
	return Point{
		X: x * float64(internal) / float64(displayW),
		Y: y * float64(internal) / float64(displayH),
	}
}
