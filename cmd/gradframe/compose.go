package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/example/gradframe/internal/clipboard"
	"github.com/example/gradframe/internal/editor"
	"github.com/example/gradframe/internal/export"
	"github.com/example/gradframe/internal/intake"
	"github.com/example/gradframe/internal/render"
)

type composeCmd struct {
	photo       string
	offsetX     float64
	offsetY     float64
	scale       float64
	fit         bool
	shadow      bool
	stdout      bool
	toClipboard bool
	*root
	fs *flag.FlagSet
}

func (c *composeCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseComposeCmd(args []string, r *root) (*composeCmd, error) {
	fs := flag.NewFlagSet("compose", flag.ExitOnError)
	c := &composeCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.photo, "photo", "", "photo to frame")
	fs.Float64Var(&c.offsetX, "offset-x", 0, "horizontal photo offset in output pixels")
	fs.Float64Var(&c.offsetY, "offset-y", 0, "vertical photo offset in output pixels")
	fs.Float64Var(&c.scale, "scale", 0, "photo scale factor (0 fits the photo)")
	fs.BoolVar(&c.fit, "fit", false, "fit and centre the photo, ignoring scale and offsets")
	fs.BoolVar(&c.shadow, "shadow", false, "draw a drop shadow behind the photo")
	fs.BoolVar(&c.stdout, "stdout", false, "write PNG data to stdout instead of a file")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the composite to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the composite to the clipboard (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.toClipboard && c.stdout {
		return nil, fmt.Errorf("-stdout cannot be used with -to-clipboard")
	}
	if c.scale < 0 {
		return nil, fmt.Errorf("-scale must be positive (or 0 to fit)")
	}
	if c.photo == "" {
		if fs.NArg() < 1 {
			return nil, &UsageError{of: c}
		}
		c.photo = fs.Arg(0)
	}
	return c, nil
}

func (c *composeCmd) Run() error {
	p, err := intake.Open(c.photo)
	if err != nil {
		return fmt.Errorf("failed to load photo: %w", err)
	}

	t := render.Transform{OffsetX: c.offsetX, OffsetY: c.offsetY, Scale: c.scale}
	if c.fit || c.scale == 0 {
		st := editor.New(export.OutputSize)
		st.SetImage(p.Image)
		t = render.Transform{OffsetX: st.OffsetX, OffsetY: st.OffsetY, Scale: st.Scale}
	}

	ex := export.New(c.root.frame(), c.root.saveDir)
	ex.SetShadow(c.shadow)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if c.toClipboard {
		data, err := ex.Render(ctx, p.Image, t)
		if err != nil {
			return err
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decode composite: %w", err)
		}
		if err := clipboard.WriteImage(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "copied framed photo to clipboard")
		c.root.notifyCopy("framed photo")
		return nil
	}

	if c.stdout {
		data, err := ex.Render(ctx, p.Image, t)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write PNG to stdout: %w", err)
		}
		fmt.Fprintln(os.Stderr, "wrote PNG data to stdout")
		return nil
	}

	path, err := ex.Export(ctx, p.Image, t)
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	fmt.Fprintf(os.Stderr, "exported %s\n", path)
	c.root.notifyExport(path)
	return nil
}
