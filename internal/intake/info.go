package intake

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	_ "image/jpeg"
	_ "image/png"
)

// Info describes a photo without fully decoding it.
type Info struct {
	Path     string
	Format   string
	Size     int64
	Width    int
	Height   int
	Taken    time.Time
	Camera   string
	HasTaken bool
}

// Inspect reads dimensions and, for JPEGs, EXIF details from the photo at
// path. Missing or unreadable EXIF data is not an error.
func Inspect(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening photo: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating photo: %w", err)
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	info := &Info{
		Path:   path,
		Format: format,
		Size:   fi.Size(),
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	if _, err := f.Seek(0, 0); err != nil {
		return info, nil
	}
	x, err := exif.Decode(f)
	if err != nil {
		return info, nil
	}
	if taken, err := x.DateTime(); err == nil {
		info.Taken = taken
		info.HasTaken = true
	}
	if tag, err := x.Get(exif.Model); err == nil {
		if model, err := tag.StringVal(); err == nil {
			info.Camera = model
		}
	}
	return info, nil
}
