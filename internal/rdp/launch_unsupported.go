//go:build !windows

package rdp

import "errors"

// Launch is unavailable off Windows; session files can still be
// generated for inspection.
func Launch(rdpFile string) error {
	return errors.New("launching remote desktop sessions requires Windows")
}
