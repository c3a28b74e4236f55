// Package render paints a transformed photo into an RGBA surface. The same
// routine backs the live preview and the fixed-resolution export; only the
// surface size and scaler differ.
package render

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Transform is the placement of a photo inside a viewport: the displacement
// of the photo's centre from the surface centre, in surface pixels, and the
// multiplier applied to the photo's native dimensions.
type Transform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

var (
	// PreviewScaler favours speed for interactive repaints.
	PreviewScaler xdraw.Scaler = xdraw.NearestNeighbor
	// ExportScaler favours quality for the final composite.
	ExportScaler xdraw.Scaler = xdraw.CatmullRom
)

// Clear resets every pixel of dst to transparent.
func Clear(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// Compose clears dst and draws src into it so that the photo's centre lands
// at (W/2 + OffsetX, H/2 + OffsetY), scaled by t.Scale. No rotation, no
// clipping beyond the surface edges, standard over-compositing. A nil src
// leaves the surface cleared.
func Compose(dst *image.RGBA, src image.Image, t Transform, scaler xdraw.Scaler) {
	Clear(dst)
	if src == nil {
		return
	}
	if scaler == nil {
		scaler = PreviewScaler
	}
	b := dst.Bounds()
	sb := src.Bounds()
	dw := float64(sb.Dx()) * t.Scale
	dh := float64(sb.Dy()) * t.Scale
	x0 := t.OffsetX - dw/2 + float64(b.Dx())/2
	y0 := t.OffsetY - dh/2 + float64(b.Dy())/2
	dr := image.Rect(
		b.Min.X+int(math.Round(x0)),
		b.Min.Y+int(math.Round(y0)),
		b.Min.X+int(math.Round(x0+dw)),
		b.Min.Y+int(math.Round(y0+dh)),
	)
	if dr.Empty() {
		return
	}
	scaler.Scale(dst, dr, src, sb, xdraw.Over, nil)
}

// ComposeShadowed renders src like Compose, then rebuilds the surface with a
// drop shadow behind the photo. The photo keeps its Compose position; shadow
// spill beyond the surface is clipped.
func ComposeShadowed(dst *image.RGBA, src image.Image, t Transform, scaler xdraw.Scaler, opts ShadowOptions) {
	if src == nil {
		Clear(dst)
		return
	}
	layer := image.NewRGBA(image.Rect(0, 0, dst.Bounds().Dx(), dst.Bounds().Dy()))
	Compose(layer, src, t, scaler)
	res := ApplyShadow(layer, opts)
	Clear(dst)
	if res.Image == nil {
		return
	}
	draw.Draw(dst, dst.Bounds(), res.Image, res.Image.Bounds().Min.Add(res.Offset), draw.Over)
}

// CompositeOverlay stretches the overlay across the whole surface at full
// opacity, edge to edge, regardless of the overlay's native resolution.
func CompositeOverlay(dst *image.RGBA, overlay image.Image) {
	if overlay == nil {
		return
	}
	ExportScaler.Scale(dst, dst.Bounds(), overlay, overlay.Bounds(), xdraw.Over, nil)
}
