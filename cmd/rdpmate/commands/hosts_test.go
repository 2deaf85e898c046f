package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdpmate/rdpmate/cmd/rdpmate/commands"
	"github.com/rdpmate/rdpmate/internal/hosts"
)

func TestHostsAddListRemove(t *testing.T) {
	t.Parallel()

	cfg, _ := testConfig(t)
	hostsFile := filepath.Join(t.TempDir(), "hosts.csv")
	writeConfigWithHostsFile(t, cfg, hostsFile)

	_, err := runCommand(t, commands.NewHostsCommand(cfg), "add", "host1.example.com", "--description", "file server")
	require.NoError(t, err)

	out, err := runCommand(t, commands.NewHostsCommand(cfg), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "host1.example.com")
	assert.Contains(t, out, "file server")
	assert.Contains(t, out, "never")

	_, err = runCommand(t, commands.NewHostsCommand(cfg), "remove", "host1.example.com")
	require.NoError(t, err)

	list, err := hosts.Load(hostsFile)
	require.NoError(t, err)
	assert.Zero(t, list.Len())
}

func TestHostsRemoveUnknown(t *testing.T) {
	t.Parallel()

	cfg, _ := testConfig(t)
	writeConfigWithHostsFile(t, cfg, filepath.Join(t.TempDir(), "hosts.csv"))

	_, err := runCommand(t, commands.NewHostsCommand(cfg), "remove", "missing.example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the list")
}

func TestHostsRemoveWithCreds(t *testing.T) {
	t.Parallel()

	cfg, store := testConfig(t)
	writeConfigWithHostsFile(t, cfg, filepath.Join(t.TempDir(), "hosts.csv"))
	require.NoError(t, store.Save("TERMSRV/h1", "u", "p"))

	_, err := runCommand(t, commands.NewHostsCommand(cfg), "add", "h1")
	require.NoError(t, err)
	_, err = runCommand(t, commands.NewHostsCommand(cfg), "remove", "h1", "--with-creds")
	require.NoError(t, err)

	cred, err := store.Read("TERMSRV/h1")
	require.NoError(t, err)
	assert.Nil(t, cred)
}
