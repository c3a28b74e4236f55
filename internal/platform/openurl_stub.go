//go:build !linux && !darwin && !windows

package platform

import "errors"

// OpenURL is unsupported on this platform.
func OpenURL(url string) error {
	return errors.New("opening URLs is not supported on this platform")
}
