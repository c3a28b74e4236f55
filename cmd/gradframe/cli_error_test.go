package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/gradframe/internal/config"
)

func TestComposeParseRejectsStdoutWithClipboard(t *testing.T) {
	_, err := parseComposeCmd([]string{"-stdout", "-to-clipboard", "photo.png"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "-stdout cannot be used with -to-clipboard"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestComposeParseRejectsNegativeScale(t *testing.T) {
	_, err := parseComposeCmd([]string{"-scale", "-2", "photo.png"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "-scale must be positive"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestComposeParseRequiresPhoto(t *testing.T) {
	r := &root{program: "gradframe compose"}
	_, err := parseComposeCmd([]string{}, r)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestComposeRunMissingPhoto(t *testing.T) {
	cmd := &composeCmd{photo: filepath.Join(t.TempDir(), "absent.png"), root: &root{program: "gradframe compose"}}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "failed to load photo"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
}

func TestInfoParseRequiresSingleArg(t *testing.T) {
	r := &root{program: "gradframe info"}
	if _, err := parseInfoCmd([]string{}, r); err == nil {
		t.Fatalf("expected usage error for no args")
	}
	if _, err := parseInfoCmd([]string{"a.png", "b.png"}, r); err == nil {
		t.Fatalf("expected usage error for extra args")
	}
}

func TestLinksRunWithoutConfiguredLink(t *testing.T) {
	r := &root{program: "gradframe links", config: config.New()}
	cmd := &linksCmd{page: "promo", root: r}
	if err := cmd.Run(); err == nil {
		t.Fatalf("expected error")
	} else if want := "no promo link configured"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestRootUsageErrorRenders(t *testing.T) {
	r := newRoot()
	err := &UsageError{of: r}
	msg := err.Error()
	if !strings.Contains(msg, "usage: gradframe") {
		t.Fatalf("usage text missing program name: %q", msg)
	}
	for _, cmd := range []string{"edit", "compose", "info", "frames", "links", "config", "version"} {
		if !strings.Contains(msg, cmd) {
			t.Errorf("usage text missing command %q", cmd)
		}
	}
}

func TestRootFrameResolution(t *testing.T) {
	r := &root{frameName: "classic"}
	if got := r.frame().Source(); got != "classic" {
		t.Errorf("frame source = %q, want classic", got)
	}
	r = &root{}
	if got := r.frame().Source(); got == "" {
		t.Error("default frame has empty source")
	}
}
