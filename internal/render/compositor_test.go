package render

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestComposeIdentityRoundTrip(t *testing.T) {
	// A viewport-sized square photo at scale 1, offset (0,0) must reproduce
	// itself pixel for pixel, centred.
	src := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			src.SetRGBA(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 7, A: 255})
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))

	Compose(dst, src, Transform{Scale: 1}, PreviewScaler)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got, want := dst.RGBAAt(x, y), src.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestComposeCentersSmallerImage(t *testing.T) {
	src := solid(10, 10, color.RGBA{R: 255, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))

	Compose(dst, src, Transform{Scale: 1}, PreviewScaler)

	// Photo occupies [15,25) on both axes.
	if got := dst.RGBAAt(20, 20); got.R != 255 || got.A != 255 {
		t.Fatalf("centre pixel = %v, want red", got)
	}
	if got := dst.RGBAAt(14, 20); got.A != 0 {
		t.Fatalf("pixel left of photo = %v, want transparent", got)
	}
	if got := dst.RGBAAt(25, 20); got.A != 0 {
		t.Fatalf("pixel right of photo = %v, want transparent", got)
	}
}

func TestComposeAppliesOffset(t *testing.T) {
	src := solid(10, 10, color.RGBA{G: 255, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))

	Compose(dst, src, Transform{OffsetX: 5, OffsetY: -5, Scale: 1}, PreviewScaler)

	// Centre moved to (25, 15): photo occupies [20,30)x[10,20).
	if got := dst.RGBAAt(24, 14); got.G != 255 {
		t.Fatalf("expected photo at shifted centre, got %v", got)
	}
	if got := dst.RGBAAt(15, 25); got.A != 0 {
		t.Fatalf("old centre should be empty, got %v", got)
	}
}

func TestComposeAppliesScale(t *testing.T) {
	src := solid(10, 10, color.RGBA{B: 255, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))

	Compose(dst, src, Transform{Scale: 2}, PreviewScaler)

	// Displayed size 20x20 centred: [10,30) on both axes.
	if got := dst.RGBAAt(10, 10); got.B != 255 {
		t.Fatalf("expected scaled photo at (10,10), got %v", got)
	}
	if got := dst.RGBAAt(9, 9); got.A != 0 {
		t.Fatalf("expected transparent outside scaled photo, got %v", got)
	}
}

func TestComposeNilSourceClears(t *testing.T) {
	dst := solid(16, 16, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	Compose(dst, nil, Transform{Scale: 1}, PreviewScaler)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := dst.RGBAAt(x, y); got.A != 0 {
				t.Fatalf("pixel (%d,%d) = %v, want cleared", x, y, got)
			}
		}
	}
}

func TestCompositeOverlayCoversEdgeToEdge(t *testing.T) {
	dst := solid(50, 50, color.RGBA{R: 255, A: 255})
	overlay := solid(10, 10, color.RGBA{B: 255, A: 255}) // different native size

	CompositeOverlay(dst, overlay)

	corners := []image.Point{{0, 0}, {49, 0}, {0, 49}, {49, 49}, {25, 25}}
	for _, p := range corners {
		got := dst.RGBAAt(p.X, p.Y)
		if got.B != 255 || got.R != 0 {
			t.Fatalf("pixel %v = %v, want opaque overlay colour", p, got)
		}
	}
}

func TestCompositeOverlayPreservesTransparentRegions(t *testing.T) {
	dst := solid(20, 20, color.RGBA{R: 255, A: 255})
	overlay := image.NewRGBA(image.Rect(0, 0, 20, 20)) // fully transparent

	CompositeOverlay(dst, overlay)

	if got := dst.RGBAAt(10, 10); got.R != 255 {
		t.Fatalf("transparent overlay must not disturb the photo, got %v", got)
	}
}
