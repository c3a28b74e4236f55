package intake

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func TestOpenDecodesPNG(t *testing.T) {
	data := pngBytes(t, 30, 20)
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if p.MIME != "image/png" {
		t.Errorf("MIME = %q, want image/png", p.MIME)
	}
	if p.Width != 30 || p.Height != 20 {
		t.Errorf("dimensions = %dx%d, want 30x20", p.Width, p.Height)
	}
	if p.Size != int64(len(data)) {
		t.Errorf("Size = %d, want %d", p.Size, len(data))
	}
}

func TestOpenRejectsOversizedFile(t *testing.T) {
	_, err := FromReader(strings.NewReader(""), "huge.jpg", MaxFileSize+1)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if !strings.Contains(ve.Reason, "limit") {
		t.Errorf("Reason = %q, want size limit mention", ve.Reason)
	}
}

func TestOpenRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("definitely not a photo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
}

func TestOpenRejectsImageExtensionWithTextContent(t *testing.T) {
	// Renaming a text file does not smuggle it past content sniffing.
	path := filepath.Join(t.TempDir(), "fake.png")
	if err := os.WriteFile(path, []byte("still not a photo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("Open() accepted text content with a .png name")
	}
}

func TestOpenReportsDecodeError(t *testing.T) {
	// Valid PNG signature, garbage body.
	data := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0xAB}, 64)...)
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DecodeError", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("Open() succeeded for missing file")
	}
}

func TestInspectReadsDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, pngBytes(t, 12, 34), 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.Format != "png" || info.Width != 12 || info.Height != 34 {
		t.Errorf("Inspect() = %+v", info)
	}
	if info.HasTaken {
		t.Error("HasTaken = true for EXIF-free PNG")
	}
}

func TestAcceptedIsSortedAndComplete(t *testing.T) {
	got := Accepted()
	for _, want := range []string{"image/jpeg", "image/png", "image/gif", "image/webp"} {
		found := false
		for _, m := range got {
			if m == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Accepted() missing %s", want)
		}
	}
}
