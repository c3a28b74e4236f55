// Package ui runs the interactive frame editor window.
package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"github.com/example/gradframe/internal/clipboard"
	"github.com/example/gradframe/internal/editor"
	"github.com/example/gradframe/internal/export"
	"github.com/example/gradframe/internal/notify"
	"github.com/example/gradframe/internal/overlay"
	"github.com/example/gradframe/internal/render"
	"github.com/example/gradframe/internal/theme"
)

const hudHeight = 24

const messageDuration = 2 * time.Second

type shortcut struct {
	Keys  string
	Label string
}

var shortcuts = []shortcut{
	{"drag", "Pan"},
	{"wheel", "Zoom"},
	{"arrows", "Pan"},
	{"+/-", "Zoom"},
	{"r", "Fit"},
	{"s", "Shadow"},
	{"^S", "Export"},
	{"^C", "Copy"},
	{"q", "Quit"},
}

// msgEvent carries a snackbar message from background work into the event loop.
type msgEvent struct {
	text string
}

// Editor holds the window configuration and session state.
type Editor struct {
	photo    image.Image
	state    *editor.State
	frame    *overlay.Frame
	exporter *export.Exporter
	notifier *notify.Notifier
	theme    *theme.Theme
	shadow   bool

	// Active touch contacts, keyed by sequence, oldest first. The first two
	// drive the gesture; later contacts are ignored until one lifts.
	touches    map[touch.Sequence]editor.Point
	touchOrder []touch.Sequence

	frameWait sync.Once

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an Editor during creation.
type Option func(*Editor)

// WithPhoto sets the photo loaded into the viewport on start up.
func WithPhoto(img image.Image) Option { return func(e *Editor) { e.photo = img } }

// WithFrame sets the decorative frame drawn over the photo.
func WithFrame(f *overlay.Frame) Option { return func(e *Editor) { e.frame = f } }

// WithExporter sets the exporter invoked by the export shortcut.
func WithExporter(ex *export.Exporter) Option { return func(e *Editor) { e.exporter = ex } }

// WithNotifier sets the notifier used for export and copy events.
func WithNotifier(n *notify.Notifier) Option { return func(e *Editor) { e.notifier = n } }

// WithTheme sets the UI color palette.
func WithTheme(t *theme.Theme) Option { return func(e *Editor) { e.theme = t } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(e *Editor) { e.onClose = fn } }

// New creates an Editor with the provided options.
func New(opts ...Option) *Editor {
	e := &Editor{
		state:   editor.New(editor.DefaultViewportSize),
		theme:   theme.Default(),
		touches: map[touch.Sequence]editor.Point{},
	}
	for _, o := range opts {
		o(e)
	}
	if e.frame == nil {
		e.frame = overlay.Embedded("")
	}
	if e.photo != nil {
		e.state.SetImage(e.photo)
	}
	return e
}

func (e *Editor) notifyClose() {
	e.closeOnce.Do(func() {
		if e.onClose != nil {
			e.onClose()
		}
	})
}

// composite renders photo and frame at full output resolution. The photo,
// transform and shadow setting are passed in explicitly so callers can
// snapshot them on the event loop and render on another goroutine while the
// loop keeps mutating the live state.
func (e *Editor) composite(ctx context.Context, photo image.Image, t render.Transform, shadow bool) (*image.RGBA, error) {
	if photo == nil {
		return nil, export.ErrNoImage
	}
	frame, err := e.frame.Await(ctx)
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, export.OutputSize, export.OutputSize))
	if shadow {
		render.ComposeShadowed(dst, photo, t, render.ExportScaler, render.DefaultShadowOptions())
	} else {
		render.Compose(dst, photo, t, render.ExportScaler)
	}
	render.CompositeOverlay(dst, frame)
	return dst, nil
}

// handleTouch tracks active contacts and feeds the first two into the
// gesture state. Any lifted finger ends the whole gesture; the remaining
// contacts only resume panning or pinching once a fresh contact begins.
// Reports whether the viewport needs a repaint.
func (e *Editor) handleTouch(typ touch.Type, seq touch.Sequence, p editor.Point) bool {
	switch typ {
	case touch.TypeBegin:
		if _, ok := e.touches[seq]; !ok {
			e.touchOrder = append(e.touchOrder, seq)
		}
		e.touches[seq] = p
	case touch.TypeMove:
		if _, ok := e.touches[seq]; !ok {
			return false
		}
		e.touches[seq] = p
	case touch.TypeEnd:
		delete(e.touches, seq)
		for i, s := range e.touchOrder {
			if s == seq {
				e.touchOrder = append(e.touchOrder[:i], e.touchOrder[i+1:]...)
				break
			}
		}
		e.state.TouchEnd()
		return false
	}

	pts := make([]editor.Point, 0, 2)
	for _, s := range e.touchOrder {
		if len(pts) == 2 {
			break
		}
		pts = append(pts, e.touches[s])
	}
	switch typ {
	case touch.TypeBegin:
		e.state.TouchStart(pts)
		return false
	case touch.TypeMove:
		e.state.TouchMove(pts)
		return true
	}
	return false
}

// scheduleFrameRepaint arranges for onReady to run once the frame overlay
// finishes loading. Only the first call spawns a waiter; paints that arrive
// while the frame is still loading are coalesced into that one.
func (e *Editor) scheduleFrameRepaint(onReady func()) {
	e.frameWait.Do(func() {
		go func() {
			e.frame.Await(context.Background())
			onReady()
		}()
	})
}

func (e *Editor) transform() render.Transform {
	return render.Transform{OffsetX: e.state.OffsetX, OffsetY: e.state.OffsetY, Scale: e.state.Scale}
}

// viewRect returns the square viewport area inside the window, centred
// horizontally above the HUD bar.
func viewRect(width, height int) image.Rectangle {
	side := width
	if avail := height - hudHeight; avail < side {
		side = avail
	}
	if side < 1 {
		side = 1
	}
	x0 := (width - side) / 2
	return image.Rect(x0, 0, x0+side, side)
}

// Run executes the UI loop using shiny's driver.
func (e *Editor) Run() { driver.Main(e.Main) }

func (e *Editor) Main(s screen.Screen) {
	defer e.notifyClose()

	width := editor.DefaultViewportSize
	height := editor.DefaultViewportSize + hudHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "GradFrame"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	// Preview buffer at the viewport's native resolution, rescaled into the
	// window on paint.
	preview := image.NewRGBA(image.Rect(0, 0, editor.DefaultViewportSize, editor.DefaultViewportSize))

	var backdrop *image.RGBA

	var message string
	var messageUntil time.Time

	announce := func(text string) {
		message = text
		messageUntil = time.Now().Add(messageDuration)
		w.Send(paint.Event{})
	}

	mapPointer := func(x, y float32, view image.Rectangle) editor.Point {
		side := view.Dx()
		return editor.MapToViewport(
			float64(x)-float64(view.Min.X),
			float64(y)-float64(view.Min.Y),
			side, side, editor.DefaultViewportSize)
	}

	// Export and copy run on background goroutines, so they work from a
	// snapshot of photo, transform and shadow taken while still on the
	// event loop; the loop is free to keep mutating the live state.
	doExport := func() {
		if e.exporter == nil {
			announce("no export destination configured")
			return
		}
		photo := e.photo
		tr := e.transform()
		e.exporter.SetShadow(e.shadow)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			path, err := e.exporter.Export(ctx, photo, tr)
			if err != nil {
				log.Printf("export: %v", err)
				w.Send(msgEvent{text: fmt.Sprintf("export failed: %v", err)})
				return
			}
			e.notifier.Export(path)
			w.Send(msgEvent{text: fmt.Sprintf("exported %s", path)})
		}()
	}

	doCopy := func() {
		photo := e.photo
		tr := e.transform()
		shadow := e.shadow
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			img, err := e.composite(ctx, photo, tr, shadow)
			if err != nil {
				log.Printf("copy: %v", err)
				w.Send(msgEvent{text: fmt.Sprintf("copy failed: %v", err)})
				return
			}
			if err := clipboard.WriteImage(img); err != nil {
				log.Printf("copy: %v", err)
				w.Send(msgEvent{text: fmt.Sprintf("copy failed: %v", err)})
				return
			}
			e.notifier.Copy("framed photo")
			w.Send(msgEvent{text: "copied to clipboard"})
		}()
	}

	for {
		ev := w.NextEvent()
		switch ev := ev.(type) {
		case msgEvent:
			announce(ev.text)
		case lifecycle.Event:
			if ev.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width = ev.WidthPx
			height = ev.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			b, err := s.NewBuffer(image.Point{width, height})
			if err != nil {
				log.Printf("new buffer: %v", err)
				continue
			}
			if backdrop == nil || backdrop.Bounds() != b.RGBA().Bounds() {
				backdrop = image.NewRGBA(b.RGBA().Bounds())
				drawCheckerboard(backdrop, backdrop.Bounds(), 8, e.theme.CheckerLight, e.theme.CheckerDark)
			}
			draw.Draw(b.RGBA(), b.RGBA().Bounds(), backdrop, image.Point{}, draw.Src)

			if e.shadow {
				render.ComposeShadowed(preview, e.photo, e.transform(), render.PreviewScaler, render.DefaultShadowOptions())
			} else {
				render.Compose(preview, e.photo, e.transform(), render.PreviewScaler)
			}
			if frame, ready, err := e.frame.Image(); err != nil {
				log.Printf("frame: %v", err)
			} else if ready {
				render.CompositeOverlay(preview, frame)
			} else {
				// Repaint once the frame arrives.
				e.scheduleFrameRepaint(func() { w.Send(paint.Event{}) })
			}

			view := viewRect(width, height)
			xdraw.NearestNeighbor.Scale(b.RGBA(), view, preview, preview.Bounds(), xdraw.Over, nil)

			if e.photo == nil {
				drawCenteredText(b.RGBA(), view, "No photo loaded", e.theme.Foreground)
			}
			drawHUD(b.RGBA(), width, height, e.theme)
			if message != "" && time.Now().Before(messageUntil) {
				drawSnackbar(b.RGBA(), view, message, e.theme)
			}

			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()
			b.Release()
		case mouse.Event:
			view := viewRect(width, height)
			switch ev.Button {
			case mouse.ButtonWheelUp:
				if ev.Direction == mouse.DirPress || ev.Direction == mouse.DirStep {
					e.state.Wheel(true)
					w.Send(paint.Event{})
				}
				continue
			case mouse.ButtonWheelDown:
				if ev.Direction == mouse.DirPress || ev.Direction == mouse.DirStep {
					e.state.Wheel(false)
					w.Send(paint.Event{})
				}
				continue
			}
			if ev.Button == mouse.ButtonLeft {
				switch ev.Direction {
				case mouse.DirPress:
					if image.Pt(int(ev.X), int(ev.Y)).In(view) {
						e.state.PointerDown(mapPointer(ev.X, ev.Y, view))
					}
				case mouse.DirRelease:
					e.state.PointerUp()
				}
			}
			if ev.Direction == mouse.DirNone {
				e.state.PointerMove(mapPointer(ev.X, ev.Y, view))
				w.Send(paint.Event{})
			}
		case touch.Event:
			view := viewRect(width, height)
			if e.handleTouch(ev.Type, ev.Sequence, mapPointer(ev.X, ev.Y, view)) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if ev.Direction != key.DirPress {
				continue
			}
			if ev.Modifiers&key.ModControl != 0 {
				switch ev.Rune {
				case 's', 'S', 0x13:
					doExport()
				case 'c', 'C', 0x03:
					doCopy()
				}
				continue
			}
			switch ev.Rune {
			case '+', '=':
				e.state.ZoomBy(editor.WheelZoomIn)
				w.Send(paint.Event{})
			case '-', '_':
				e.state.ZoomBy(editor.WheelZoomOut)
				w.Send(paint.Event{})
			case 'r', 'R':
				e.state.Fit()
				w.Send(paint.Event{})
			case 's', 'S':
				e.shadow = !e.shadow
				if e.shadow {
					announce("shadow on")
				} else {
					announce("shadow off")
				}
			case '0':
				e.photo = nil
				e.state.Reset()
				w.Send(paint.Event{})
			case 'q', 'Q':
				return
			case -1:
				switch ev.Code {
				case key.CodeLeftArrow:
					e.state.PanBy(-editor.ArrowStep, 0)
					w.Send(paint.Event{})
				case key.CodeRightArrow:
					e.state.PanBy(editor.ArrowStep, 0)
					w.Send(paint.Event{})
				case key.CodeUpArrow:
					e.state.PanBy(0, -editor.ArrowStep)
					w.Send(paint.Event{})
				case key.CodeDownArrow:
					e.state.PanBy(0, editor.ArrowStep)
					w.Send(paint.Event{})
				case key.CodeEscape:
					return
				}
			}
		}
	}
}

// drawCheckerboard fills rect of dst with a checkerboard pattern of the given
// colors. size controls the checker square size.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

func drawHUD(dst *image.RGBA, width, height int, t *theme.Theme) {
	bar := image.Rect(0, height-hudHeight, width, height)
	draw.Draw(dst, bar, &image.Uniform{t.HUDBackground}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.HUDText),
		Face: basicfont.Face7x13,
	}
	x := 4
	for _, s := range shortcuts {
		label := fmt.Sprintf("%s:%s", s.Keys, s.Label)
		d.Dot = fixed.P(x, height-8)
		d.DrawString(label)
		x += d.MeasureString(label).Ceil() + 14
		if x >= width {
			break
		}
	}
}

func drawSnackbar(dst *image.RGBA, view image.Rectangle, msg string, t *theme.Theme) {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := d.MeasureString(msg).Ceil()
	cx := view.Min.X + view.Dx()/2
	cy := view.Min.Y + view.Dy()/2
	box := image.Rect(cx-w/2-8, cy-16, cx+w/2+8, cy+16)
	draw.Draw(dst, box, &image.Uniform{t.HUDBackground}, image.Point{}, draw.Src)
	d = &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.HUDText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(box.Min.X+8, cy+4),
	}
	d.DrawString(msg)
}

func drawCenteredText(dst *image.RGBA, view image.Rectangle, msg string, col color.RGBA) {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := d.MeasureString(msg).Ceil()
	d = &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(view.Min.X+(view.Dx()-w)/2, view.Min.Y+view.Dy()/2),
	}
	d.DrawString(msg)
}
