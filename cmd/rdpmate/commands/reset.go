package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rdpmate/rdpmate/internal/config"
	rderrors "github.com/rdpmate/rdpmate/internal/errors"
)

// NewResetCommand builds the reset command, which wipes every
// credential this application owns: all TERMSRV/ records plus the
// global record. The host list file is left alone unless --hosts is
// given.
func NewResetCommand(cfg *config.Config) *cobra.Command {
	var (
		yes       bool
		withHosts bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Delete ALL saved credentials? [y/N]: ")
				var answer string
				fmt.Fscanln(cmd.InOrStdin(), &answer)
				if !strings.EqualFold(answer, "y") {
					cfg.Logger.Info("reset cancelled")
					return nil
				}
			}

			if err := newManager(cfg).Reset(); err != nil {
				return rderrors.VaultError("reset", err)
			}
			cfg.Logger.Info("all credentials deleted")

			if withHosts {
				if err := removeHostsFile(cfg.Definition.HostsFile); err != nil {
					return err
				}
				cfg.Logger.Info("host list deleted")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&withHosts, "hosts", false, "Also delete the host list file")
	return cmd
}
