package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/example/gradframe/internal/export"
	"github.com/example/gradframe/internal/intake"
	"github.com/example/gradframe/internal/ui"
)

type editCmd struct {
	photo string
	*root
	fs *flag.FlagSet
}

func (c *editCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	cmd := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	fs.StringVar(&cmd.photo, "photo", "", "photo to load into the editor")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cmd.photo == "" && fs.NArg() > 0 {
		cmd.photo = fs.Arg(0)
	}
	return cmd, nil
}

func (c *editCmd) Run() error {
	frame := c.root.frame()
	opts := []ui.Option{
		ui.WithFrame(frame),
		ui.WithExporter(export.New(frame, c.root.saveDir)),
		ui.WithNotifier(c.root.notifier),
		ui.WithTheme(c.root.activeTheme),
	}
	if c.photo != "" {
		p, err := intake.Open(c.photo)
		if err != nil {
			return fmt.Errorf("failed to load photo: %w", err)
		}
		log.Printf("loaded %s (%dx%d, %s)", p.Path, p.Width, p.Height, p.MIME)
		opts = append(opts, ui.WithPhoto(p.Image))
	}
	ui.New(opts...).Run()
	return nil
}
