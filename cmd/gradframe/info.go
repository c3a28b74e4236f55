package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/gradframe/internal/intake"
)

type infoCmd struct {
	photo string
	*root
	fs *flag.FlagSet
}

func (c *infoCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseInfoCmd(args []string, r *root) (*infoCmd, error) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	cmd := &infoCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, &UsageError{of: cmd}
	}
	cmd.photo = fs.Arg(0)
	return cmd, nil
}

func (c *infoCmd) Run() error {
	info, err := intake.Inspect(c.photo)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "path:       %s\n", info.Path)
	fmt.Fprintf(os.Stdout, "format:     %s\n", info.Format)
	fmt.Fprintf(os.Stdout, "dimensions: %dx%d\n", info.Width, info.Height)
	fmt.Fprintf(os.Stdout, "size:       %d bytes\n", info.Size)
	if info.Size > intake.MaxFileSize {
		fmt.Fprintf(os.Stdout, "note:       exceeds the %d byte editor limit\n", intake.MaxFileSize)
	}
	if info.HasTaken {
		fmt.Fprintf(os.Stdout, "taken:      %s\n", info.Taken.Format("2006-01-02 15:04:05"))
	}
	if info.Camera != "" {
		fmt.Fprintf(os.Stdout, "camera:     %s\n", info.Camera)
	}
	return nil
}
