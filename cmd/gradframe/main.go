package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/gradframe/internal/config"
	"github.com/example/gradframe/internal/notify"
	"github.com/example/gradframe/internal/overlay"
	"github.com/example/gradframe/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	notifier     *notify.Notifier
	config       *config.Config
	exportAlerts bool
	copyAlerts   bool
	themeName    string
	activeTheme  *theme.Theme
	saveDir      string
	frameName    string
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:      program,
		notifier:     r.notifier,
		config:       r.config,
		exportAlerts: r.exportAlerts,
		copyAlerts:   r.copyAlerts,
		themeName:    r.themeName,
		activeTheme:  r.activeTheme,
		saveDir:      r.saveDir,
		frameName:    r.frameName,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("gradframe", flag.ExitOnError),
		program:  "gradframe",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.exportAlerts, "notify-export", cfg.Notify.Export, "show a desktop notification after exporting a framed photo")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.StringVar(&r.saveDir, "save-dir", "", "directory exports are written to (default: current directory)")
	r.fs.StringVar(&r.frameName, "frame", "", "built-in frame name or path to a PNG overlay")

	// Precedence: CLI > Env > Config > Default
	// The flag default stays empty; fallback happens in Run.
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventExport, r.exportAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}

	if r.saveDir == "" {
		r.saveDir = r.config.SaveDir
	}
	if r.saveDir == "" {
		r.saveDir = "."
	}
	if r.frameName == "" {
		r.frameName = r.config.Frame
	}

	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("GRADFRAME_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}

	var t *theme.Theme
	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		t = cfgTheme
	} else {
		loader := theme.NewLoader()
		var loadErr error
		t, loadErr = loader.Load(themeName)
		if loadErr != nil {
			if themeName != "" && themeName != "default" {
				fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", themeName, loadErr)
			}
			t = theme.Default()
		}
	}
	r.activeTheme = t

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]
	sub := r.subcommand(cmdName)

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, sub)
	case "compose":
		cmd, err = parseComposeCmd(subArgs, sub)
	case "info":
		cmd, err = parseInfoCmd(subArgs, sub)
	case "frames":
		cmd, err = parseFramesCmd(subArgs, sub)
	case "links":
		cmd, err = parseLinksCmd(subArgs, sub)
	case "config":
		cmd, err = parseConfigCmd(subArgs, sub)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	if runErr := cmd.Run(); runErr != nil {
		return runErr
	}
	return nil
}

// frame resolves the configured frame selection: a file path when it names
// an existing file, a built-in frame otherwise.
func (r *root) frame() *overlay.Frame {
	name := strings.TrimSpace(r.frameName)
	if name != "" {
		if _, err := os.Stat(name); err == nil {
			return overlay.FromFile(name)
		}
		if filepath.Ext(name) != "" {
			fmt.Fprintf(os.Stderr, "warning: frame file %q not found, using built-in\n", name)
			name = ""
		}
	}
	return overlay.Embedded(name)
}

func (r *root) notifyExport(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Export(path)
}

func (r *root) notifyCopy(detail string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
