package theme

import (
	"image/color"
	"strings"
	"testing"
)

func TestParseOverridesDefaults(t *testing.T) {
	src := `
Name: Midnight
# comment line
Background: #101010
HUDText: #FFEE00CC
`
	th, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if th.Name != "Midnight" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{16, 16, 16, 255}) {
		t.Errorf("Background = %v", th.Background)
	}
	if th.HUDText != (color.RGBA{0xFF, 0xEE, 0x00, 0xCC}) {
		t.Errorf("HUDText = %v", th.HUDText)
	}
	// Untouched keys keep their defaults.
	if th.CheckerDark != Default().CheckerDark {
		t.Errorf("CheckerDark = %v", th.CheckerDark)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Background: not-a-color\n")); err == nil {
		t.Fatal("Parse() accepted invalid color")
	}
}

func TestLoaderBuiltins(t *testing.T) {
	l := NewLoader()
	for _, name := range []string{"default", "light", "dark", "Dark"} {
		if _, err := l.Load(name); err != nil {
			t.Errorf("Load(%q) error = %v", name, err)
		}
	}
	if _, err := l.Load("no-such-theme"); err == nil {
		t.Error("Load() found a theme that does not exist")
	}
}
