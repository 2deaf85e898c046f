package commands_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rdpmate/rdpmate/internal/config"
)

// writeConfigWithHostsFile writes a config file at cfg.Path pointing
// the host list at hostsFile, so commands under test never touch the
// user's real configuration directory.
func writeConfigWithHostsFile(t *testing.T, cfg *config.Config, hostsFile string) {
	t.Helper()

	content := fmt.Sprintf("hosts_file: %q\n", hostsFile)
	require.NoError(t, os.WriteFile(cfg.Path, []byte(content), 0o600))
}
