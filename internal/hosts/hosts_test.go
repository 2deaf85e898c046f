package hosts_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdpmate/rdpmate/internal/hosts"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	l, err := hosts.Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Zero(t, l.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "hosts.csv")
	connected := time.Date(2026, 8, 12, 9, 30, 0, 0, time.UTC)

	l := hosts.NewList()
	l.Add(hosts.Host{Hostname: "b.example.com", Description: "build box"})
	l.Add(hosts.Host{Hostname: "a.example.com", Description: "file server", LastConnected: connected})
	require.NoError(t, l.Save(path))

	loaded, err := hosts.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	all := loaded.All()
	assert.Equal(t, "a.example.com", all[0].Hostname)
	assert.Equal(t, "file server", all[0].Description)
	assert.True(t, all[0].LastConnected.Equal(connected))
	assert.Equal(t, "b.example.com", all[1].Hostname)
	assert.True(t, all[1].LastConnected.IsZero())
}

func TestTouchAddsUnknownHost(t *testing.T) {
	t.Parallel()

	l := hosts.NewList()
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	l.Touch("new.example.com", at)

	h, ok := l.Get("new.example.com")
	require.True(t, ok)
	assert.True(t, h.LastConnected.Equal(at))
}

func TestRemove(t *testing.T) {
	t.Parallel()

	l := hosts.NewList()
	l.Add(hosts.Host{Hostname: "gone.example.com"})
	l.Remove("gone.example.com")
	l.Remove("never-there")
	assert.Zero(t, l.Len())
}

func TestLoadRejectsBadTimestamp(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.csv")
	require.NoError(t, os.WriteFile(path, []byte("h1,desc,not-a-time\n"), 0o600))

	_, err := hosts.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad timestamp")
}

func TestLoadRejectsEmptyHostname(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hosts.csv")
	require.NoError(t, os.WriteFile(path, []byte(" ,desc,\n"), 0o600))

	_, err := hosts.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty hostname")
}
