package render

import (
	"image"
	"image/color"
	"testing"
)

func TestApplyShadowExpandsBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	subject := image.Pt(5, 5)
	img.Set(subject.X, subject.Y, color.RGBA{R: 255, A: 255})

	opts := ShadowOptions{Radius: 4, Offset: image.Pt(8, 6), Opacity: 0.5}
	res := ApplyShadow(img, opts)
	if res.Image == nil {
		t.Fatal("expected output image")
	}
	expected := image.Rect(0, 0, 22, 20)
	if !res.Image.Bounds().Eq(expected) {
		t.Fatalf("unexpected bounds %v, want %v", res.Image.Bounds(), expected)
	}
	// Spot check that the shadow alpha was written near the offset pixel.
	shadowPt := subject.Add(opts.Offset)
	if res.Image.RGBAAt(shadowPt.X, shadowPt.Y).A == 0 {
		t.Fatalf("expected shadow alpha at %v", shadowPt)
	}
}

func TestApplyShadowNoShadowWhenOpacityZero(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, fill)
		}
	}
	res := ApplyShadow(img, ShadowOptions{Radius: 12, Offset: image.Pt(20, 10), Opacity: 0})
	if res.Image == nil {
		t.Fatal("expected output image")
	}
	if !res.Image.Bounds().Eq(img.Bounds()) {
		t.Fatalf("bounds changed unexpectedly: %v vs %v", res.Image.Bounds(), img.Bounds())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := res.Image.RGBAAt(x, y); got != fill {
				t.Fatalf("pixel mismatch at (%d,%d): got %+v want %+v", x, y, got, fill)
			}
		}
	}
}

func TestApplyShadowBlurredAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{A: 255})
	opts := ShadowOptions{Radius: 2, Offset: image.Pt(3, 0), Opacity: 1}

	res := ApplyShadow(img, opts)
	if res.Image == nil {
		t.Fatal("expected output image")
	}
	if res.Image.Bounds().Dx() <= img.Bounds().Dx() {
		t.Fatalf("expected wider output bounds")
	}
	// Check that blur spreads alpha beyond the exact offset location.
	base := img.Bounds().Min.Add(opts.Offset)
	baseAlpha := res.Image.RGBAAt(base.X, base.Y).A
	if baseAlpha == 0 {
		t.Fatal("expected alpha at base shadow location")
	}
	// Neighbor pixel should also have alpha because of blur.
	if res.Image.RGBAAt(base.X+1, base.Y).A == 0 {
		t.Fatalf("expected blurred alpha to reach neighbor, base alpha=%d", baseAlpha)
	}
}

func TestComposeShadowedKeepsPhotoPosition(t *testing.T) {
	src := solid(10, 10, color.RGBA{R: 255, A: 255})
	plain := image.NewRGBA(image.Rect(0, 0, 40, 40))
	shadowed := image.NewRGBA(image.Rect(0, 0, 40, 40))

	tr := Transform{OffsetX: 4, OffsetY: -2, Scale: 1}
	Compose(plain, src, tr, PreviewScaler)
	ComposeShadowed(shadowed, src, tr, PreviewScaler, DefaultShadowOptions())

	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if plain.RGBAAt(x, y).R == 255 && shadowed.RGBAAt(x, y).R != 255 {
				t.Fatalf("photo pixel (%d,%d) moved when shadowed", x, y)
			}
		}
	}
}

func TestComposeShadowedNilSourceClears(t *testing.T) {
	dst := solid(8, 8, color.RGBA{G: 255, A: 255})
	ComposeShadowed(dst, nil, Transform{Scale: 1}, PreviewScaler, DefaultShadowOptions())
	if dst.RGBAAt(4, 4).A != 0 {
		t.Fatal("expected cleared surface for nil source")
	}
}
