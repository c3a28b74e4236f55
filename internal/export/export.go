// Package export renders the framed composite and writes it to disk.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/example/gradframe/internal/overlay"
	"github.com/example/gradframe/internal/render"
)

// OutputSize is the side length of the exported square, in pixels.
const OutputSize = 800

// Filename is the fixed name every export is written under.
const Filename = "graduation-frame.png"

var (
	// ErrNoImage means export was requested before a photo was loaded.
	ErrNoImage = errors.New("no photo loaded")
	// ErrInFlight means an export is already running.
	ErrInFlight = errors.New("export already in progress")
)

// SerializationError reports a composite that could not be encoded as PNG.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("encoding composite: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// ResourceError reports a filesystem failure while writing the export.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("writing %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// pngEncode is swapped out by tests.
var pngEncode = png.Encode

// Exporter renders photo-plus-frame composites at full output resolution
// and saves them. At most one export runs at a time.
type Exporter struct {
	frame  *overlay.Frame
	dir    string
	busy   atomic.Bool
	shadow atomic.Bool
}

// New returns an Exporter that writes into dir using frame as the overlay.
func New(frame *overlay.Frame, dir string) *Exporter {
	return &Exporter{frame: frame, dir: dir}
}

// Path is where the next export will land.
func (e *Exporter) Path() string {
	return filepath.Join(e.dir, Filename)
}

// SetShadow controls whether a drop shadow is drawn behind the photo before
// the frame is applied. Safe to call while a render is in flight; the new
// setting applies from the next render.
func (e *Exporter) SetShadow(on bool) {
	e.shadow.Store(on)
}

// Render produces the PNG bytes of the composite: the photo under t,
// then the frame stretched over the full output square.
func (e *Exporter) Render(ctx context.Context, src image.Image, t render.Transform) ([]byte, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	frame, err := e.frame.Await(ctx)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, OutputSize, OutputSize))
	if e.shadow.Load() {
		render.ComposeShadowed(dst, src, t, render.ExportScaler, render.DefaultShadowOptions())
	} else {
		render.Compose(dst, src, t, render.ExportScaler)
	}
	render.CompositeOverlay(dst, frame)

	var buf bytes.Buffer
	if err := pngEncode(&buf, dst); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return buf.Bytes(), nil
}

// Export renders the composite and writes it to Path. The write goes
// through a temp file and rename so a failed export never leaves a
// partial file behind. Concurrent calls beyond the first return
// ErrInFlight.
func (e *Exporter) Export(ctx context.Context, src image.Image, t render.Transform) (string, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return "", ErrInFlight
	}
	defer e.busy.Store(false)

	data, err := e.Render(ctx, src, t)
	if err != nil {
		return "", err
	}

	out := e.Path()
	tmp, err := os.CreateTemp(e.dir, Filename+".tmp-*")
	if err != nil {
		return "", &ResourceError{Path: out, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", &ResourceError{Path: out, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &ResourceError{Path: out, Err: err}
	}
	if err := os.Rename(tmpName, out); err != nil {
		return "", &ResourceError{Path: out, Err: err}
	}
	return out, nil
}
