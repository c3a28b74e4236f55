package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
)

// Embedded frame overlay assets for gradframe.
//
//go:embed frames/*.png
var embeddedFrames embed.FS

var (
	loadFramesOnce sync.Once
	loadFramesErr  error

	frameImages = map[string]image.Image{}
	frameData   = map[string][]byte{}
)

// DefaultFrame is the name of the frame overlay used when no override is
// configured.
const DefaultFrame = "classic"

func loadFrames() {
	entries, err := fs.ReadDir(embeddedFrames, "frames")
	if err != nil {
		loadFramesErr = err
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".png") {
			continue
		}
		data, err := embeddedFrames.ReadFile(path.Join("frames", name))
		if err != nil {
			loadFramesErr = err
			return
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			loadFramesErr = err
			return
		}
		base := strings.TrimSuffix(name, ".png")
		frameImages[base] = img
		buf := make([]byte, len(data))
		copy(buf, data)
		frameData[base] = buf
	}
}

func ensureFrames() error {
	loadFramesOnce.Do(loadFrames)
	return loadFramesErr
}

// FrameImage returns the decoded image for an embedded frame overlay.
func FrameImage(name string) (image.Image, error) {
	if err := ensureFrames(); err != nil {
		return nil, err
	}
	img, ok := frameImages[name]
	if !ok {
		return nil, fmt.Errorf("frame %q not embedded", name)
	}
	return img, nil
}

// FramePNG returns a copy of the raw PNG bytes for the named frame overlay.
func FramePNG(name string) ([]byte, error) {
	if err := ensureFrames(); err != nil {
		return nil, err
	}
	data, ok := frameData[name]
	if !ok {
		return nil, fmt.Errorf("frame %q not embedded", name)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// FrameNames lists the frame overlays embedded in the binary.
func FrameNames() []string {
	if err := ensureFrames(); err != nil {
		return nil
	}
	names := make([]string, 0, len(frameImages))
	for name := range frameImages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
