package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/gradframe/internal/platform"
)

type linksCmd struct {
	page string
	*root
	fs *flag.FlagSet
}

func (c *linksCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseLinksCmd(args []string, r *root) (*linksCmd, error) {
	fs := flag.NewFlagSet("links", flag.ExitOnError)
	cmd := &linksCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, &UsageError{of: cmd}
	}
	if fs.NArg() == 1 {
		cmd.page = strings.ToLower(fs.Arg(0))
	}
	return cmd, nil
}

func (c *linksCmd) Run() error {
	links := c.root.config.Links
	if c.page == "" {
		if links.Promo == "" && links.Gallery == "" {
			fmt.Fprintln(os.Stdout, "no links configured; add a [links] section to the config")
			return nil
		}
		if links.Promo != "" {
			fmt.Fprintf(os.Stdout, "promo    %s\n", links.Promo)
		}
		if links.Gallery != "" {
			fmt.Fprintf(os.Stdout, "gallery  %s\n", links.Gallery)
		}
		return nil
	}

	var url string
	switch c.page {
	case "promo":
		url = links.Promo
	case "gallery":
		url = links.Gallery
	default:
		return &UsageError{of: c}
	}
	if url == "" {
		return fmt.Errorf("no %s link configured", c.page)
	}
	if err := platform.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	fmt.Fprintf(os.Stderr, "opened %s\n", url)
	return nil
}
