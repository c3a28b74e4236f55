package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/example/gradframe/assets"
)

type framesCmd struct {
	*root
	fs *flag.FlagSet
}

func (c *framesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseFramesCmd(args []string, r *root) (*framesCmd, error) {
	fs := flag.NewFlagSet("frames", flag.ExitOnError)
	cmd := &framesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *framesCmd) Run() error {
	names := assets.FrameNames()
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "no frames available")
		return nil
	}
	fmt.Fprintln(os.Stdout, "built-in frames (* marks the default):")
	for _, name := range names {
		marker := " "
		if name == assets.DefaultFrame {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", marker, name)
	}
	return nil
}
