package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdpmate/rdpmate/internal/config"
	rderrors "github.com/rdpmate/rdpmate/internal/errors"
	"github.com/rdpmate/rdpmate/internal/hosts"
)

// NewHostsCommand groups the host-list subcommands.
func NewHostsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Manage the host list",
	}

	cmd.AddCommand(
		newHostsListCommand(cfg),
		newHostsAddCommand(cfg),
		newHostsRemoveCommand(cfg),
	)
	return cmd
}

func newHostsListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			list, err := hosts.Load(cfg.Definition.HostsFile)
			if err != nil {
				return err
			}
			for _, h := range list.All() {
				last := "never"
				if !h.LastConnected.IsZero() {
					last = h.LastConnected.Local().Format("2006-01-02 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t(last connected: %s)\n", h.Hostname, h.Description, last)
			}
			return nil
		},
	}
}

func newHostsAddCommand(cfg *config.Config) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <hostname>",
		Short: "Add a host to the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			list, err := hosts.Load(cfg.Definition.HostsFile)
			if err != nil {
				return err
			}
			list.Add(hosts.Host{Hostname: args[0], Description: description})
			if err := list.Save(cfg.Definition.HostsFile); err != nil {
				return err
			}
			cfg.Logger.Info("added %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Host description")
	return cmd
}

func newHostsRemoveCommand(cfg *config.Config) *cobra.Command {
	var withCreds bool

	cmd := &cobra.Command{
		Use:   "remove <hostname>",
		Short: "Remove a host from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			list, err := hosts.Load(cfg.Definition.HostsFile)
			if err != nil {
				return err
			}
			if _, ok := list.Get(args[0]); !ok {
				return rderrors.UserError{
					Message:    fmt.Sprintf("Host '%s' is not in the list", args[0]),
					Suggestion: "Use 'rdpmate hosts list' to see known hosts",
				}
			}
			list.Remove(args[0])
			if err := list.Save(cfg.Definition.HostsFile); err != nil {
				return err
			}

			if withCreds {
				if err := newManager(cfg).DeleteHost(args[0]); err != nil {
					return rderrors.VaultError("delete", err)
				}
			}
			cfg.Logger.Info("removed %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&withCreds, "with-creds", false, "Also delete the host's saved credentials")
	return cmd
}
