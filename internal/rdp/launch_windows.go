//go:build windows

package rdp

import (
	"fmt"
	"os/exec"
)

// Launch starts mstsc with the given .rdp file and returns without
// waiting for the session to end.
func Launch(rdpFile string) error {
	cmd := exec.Command("mstsc", rdpFile)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching mstsc: %w", err)
	}
	// Detach; mstsc outlives this process.
	return cmd.Process.Release()
}
