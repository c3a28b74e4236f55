//go:build windows

package platform

import "os/exec"

// OpenURL opens url in the user's default browser.
func OpenURL(url string) error {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
}
