// Package rdp generates .rdp session files and launches the system
// remote-desktop client. The client reads its password from the
// TERMSRV/ credential the vault layer writes; the .rdp file itself
// never contains secret material.
package rdp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Session describes one connection to render as a .rdp file.
type Session struct {
	Hostname   string
	Username   string
	Fullscreen bool
	Width      int
	Height     int
}

// FileContent renders the .rdp key:type:value lines for the session.
func FileContent(s Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "full address:s:%s\r\n", s.Hostname)
	if s.Username != "" {
		fmt.Fprintf(&b, "username:s:%s\r\n", s.Username)
	}
	screenMode := 1
	if s.Fullscreen {
		screenMode = 2
	}
	fmt.Fprintf(&b, "screen mode id:i:%d\r\n", screenMode)
	if s.Width > 0 {
		fmt.Fprintf(&b, "desktopwidth:i:%d\r\n", s.Width)
	}
	if s.Height > 0 {
		fmt.Fprintf(&b, "desktopheight:i:%d\r\n", s.Height)
	}
	// The saved TERMSRV credential supplies the password.
	b.WriteString("prompt for credentials:i:0\r\n")
	b.WriteString("authentication level:i:2\r\n")

	return b.String()
}

// WriteFile writes the session file into dir and returns its path.
func WriteFile(dir string, s Session) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("rdpmate-%s.rdp", sanitize(s.Hostname)))
	if err := os.WriteFile(path, []byte(FileContent(s)), 0o600); err != nil {
		return "", fmt.Errorf("writing rdp file: %w", err)
	}
	return path, nil
}

// sanitize keeps hostname-derived file names free of path separators.
func sanitize(hostname string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_")
	return r.Replace(hostname)
}
