// Package intake validates and decodes photos supplied by the user before
// they reach the editor.
package intake

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	_ "image/gif"

	_ "golang.org/x/image/webp"
)

// MaxFileSize is the largest photo accepted, in bytes.
const MaxFileSize = 10 << 20

// allowedTypes maps acceptable MIME types to their usual extension.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ValidationError rejects a file before decoding is attempted, on type or
// size grounds.
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rejected %q: %s", e.Path, e.Reason)
}

// DecodeError reports a file that passed validation but could not be
// decoded into an image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Photo is a validated, decoded photo ready for the editor.
type Photo struct {
	Image  image.Image
	Path   string
	MIME   string
	Size   int64
	Width  int
	Height int
}

// Open validates and decodes the photo at path. Files over MaxFileSize or
// outside the accepted image types are rejected without decoding.
// EXIF orientation is applied so portrait shots arrive upright.
func Open(path string) (*Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening photo: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stating photo: %w", err)
	}
	return open(f, path, fi.Size())
}

// FromReader validates and decodes a photo from r, using name in error
// messages. size must be the full length of the data.
func FromReader(r io.Reader, name string, size int64) (*Photo, error) {
	return open(r, name, size)
}

func open(r io.Reader, path string, size int64) (*Photo, error) {
	if size > MaxFileSize {
		return nil, &ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("file is %d bytes, limit is %d", size, MaxFileSize),
		}
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("reading photo: %w", err)
	}
	head = head[:n]

	mime := sniff(head, path)
	if _, ok := allowedTypes[mime]; !ok {
		return nil, &ValidationError{
			Path:   path,
			Reason: fmt.Sprintf("unsupported type %s", mime),
		}
	}

	img, err := imaging.Decode(io.MultiReader(bytes.NewReader(head), r), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	b := img.Bounds()
	return &Photo{
		Image:  img,
		Path:   path,
		MIME:   mime,
		Size:   size,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

// sniff determines the MIME type from content, falling back to the file
// extension when detection comes back generic.
func sniff(head []byte, path string) string {
	mime := http.DetectContentType(head)
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	if mime == "application/octet-stream" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".jpg", ".jpeg":
			return "image/jpeg"
		case ".png":
			return "image/png"
		case ".gif":
			return "image/gif"
		case ".webp":
			return "image/webp"
		}
	}
	return mime
}

// Accepted lists the MIME types Open will take, for help text.
func Accepted() []string {
	out := make([]string, 0, len(allowedTypes))
	for mime := range allowedTypes {
		out = append(out, mime)
	}
	sort.Strings(out)
	return out
}
