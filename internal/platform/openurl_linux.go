//go:build linux

package platform

import (
	"os/exec"

	"github.com/godbus/dbus/v5"
)

// OpenURL opens url in the user's browser, preferring the desktop portal
// and falling back to xdg-open outside portal-aware sessions.
func OpenURL(url string) error {
	if err := openViaPortal(url); err == nil {
		return nil
	}
	return exec.Command("xdg-open", url).Start()
}

func openViaPortal(url string) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return err
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.portal.Desktop", "/org/freedesktop/portal/desktop")
	call := obj.Call("org.freedesktop.portal.OpenURI.OpenURI", 0,
		"", url, map[string]dbus.Variant{})
	return call.Err
}
