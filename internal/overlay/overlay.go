// Package overlay loads the decorative frame drawn over the photo. The
// frame is fetched once, in the background, and every later use waits on
// that single load.
package overlay

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/example/gradframe/assets"
)

// LoadError reports a frame image that could not be fetched or decoded.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading frame %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Frame is a decorative overlay image. Load starts on the first call to
// Await or Image and runs exactly once; a failed load is final.
type Frame struct {
	source string
	open   func() (image.Image, error)

	once sync.Once
	done chan struct{}
	img  image.Image
	err  error
}

// Embedded returns the named built-in frame. An empty name selects the
// default frame shipped with the binary.
func Embedded(name string) *Frame {
	if name == "" {
		name = assets.DefaultFrame
	}
	return &Frame{
		source: name,
		done:   make(chan struct{}),
		open: func() (image.Image, error) {
			return assets.FrameImage(name)
		},
	}
}

// FromFile returns a frame backed by a PNG on disk, for users who supply
// their own artwork.
func FromFile(path string) *Frame {
	return &Frame{
		source: path,
		done:   make(chan struct{}),
		open: func() (image.Image, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return imaging.Decode(f)
		},
	}
}

// Source names where the frame comes from, for log lines and errors.
func (f *Frame) Source() string { return f.source }

func (f *Frame) load() {
	f.once.Do(func() {
		go func() {
			defer close(f.done)
			img, err := f.open()
			if err != nil {
				f.err = &LoadError{Source: f.source, Err: err}
				return
			}
			f.img = img
		}()
	})
}

// Await blocks until the frame has loaded or ctx is cancelled.
func (f *Frame) Await(ctx context.Context) (image.Image, error) {
	f.load()
	select {
	case <-f.done:
		return f.img, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Image returns the frame if it has already loaded, kicking off the load
// otherwise. The second result reports whether the image is ready; a load
// failure surfaces as ready with a nil image and a non-nil error.
func (f *Frame) Image() (image.Image, bool, error) {
	f.load()
	select {
	case <-f.done:
		return f.img, true, f.err
	default:
		return nil, false, nil
	}
}
