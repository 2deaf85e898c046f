package rdp_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdpmate/rdpmate/internal/rdp"
)

func TestFileContent(t *testing.T) {
	t.Parallel()

	content := rdp.FileContent(rdp.Session{
		Hostname: "host1.example.com",
		Username: "alice",
		Width:    1280,
		Height:   800,
	})

	assert.Contains(t, content, "full address:s:host1.example.com\r\n")
	assert.Contains(t, content, "username:s:alice\r\n")
	assert.Contains(t, content, "screen mode id:i:1\r\n")
	assert.Contains(t, content, "desktopwidth:i:1280\r\n")
	assert.Contains(t, content, "desktopheight:i:800\r\n")
	assert.Contains(t, content, "prompt for credentials:i:0\r\n")
}

func TestFileContentFullscreenOmitsUsernameWhenEmpty(t *testing.T) {
	t.Parallel()

	content := rdp.FileContent(rdp.Session{Hostname: "h", Fullscreen: true})
	assert.Contains(t, content, "screen mode id:i:2\r\n")
	assert.NotContains(t, content, "username:")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := rdp.WriteFile(dir, rdp.Session{Hostname: "a/b:c"})
	require.NoError(t, err)
	assert.Contains(t, path, "rdpmate-a_b_c.rdp")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "full address:s:a/b:c")
}
