//go:build darwin

package platform

import "os/exec"

// OpenURL opens url in the user's default browser.
func OpenURL(url string) error {
	return exec.Command("open", url).Start()
}
