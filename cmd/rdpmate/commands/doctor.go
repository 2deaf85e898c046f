package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rdpmate/rdpmate/internal/config"
	"github.com/rdpmate/rdpmate/internal/creds"
	"github.com/rdpmate/rdpmate/internal/hosts"
	"github.com/rdpmate/rdpmate/internal/vault"
)

// NewDoctorCommand builds the doctor command, a read-only health check
// of the vault, the host list, and the configuration.
func NewDoctorCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that rdpmate can reach its credential vault and host list",
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false

			if err := cfg.Load(); err != nil {
				cfg.Logger.Error("config: %v", err)
				failed = true
			} else {
				cfg.Logger.Info("config ok (%s)", cfg.Path)
			}

			// An enumeration is the cheapest full round trip through
			// the vault that mutates nothing.
			m := newManager(cfg)
			if hostnames, err := m.ListHosts(); err != nil {
				if errors.Is(err, vault.ErrUnsupportedPlatform) {
					cfg.Logger.Error("credential vault: unavailable on %s (Windows required)", runtime.GOOS)
				} else {
					cfg.Logger.Error("credential vault: %v", err)
				}
				failed = true
			} else {
				cfg.Logger.Info("credential vault ok (%d host credential(s) under %s)", len(hostnames), creds.HostTargetPrefix)
			}

			if list, err := hosts.Load(cfg.Definition.HostsFile); err != nil {
				cfg.Logger.Error("host list: %v", err)
				failed = true
			} else {
				cfg.Logger.Info("host list ok (%d host(s) in %s)", list.Len(), cfg.Definition.HostsFile)
			}

			if failed {
				return fmt.Errorf("doctor found problems")
			}
			return nil
		},
	}
}
