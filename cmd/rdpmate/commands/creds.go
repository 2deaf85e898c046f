package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdpmate/rdpmate/internal/config"
	rderrors "github.com/rdpmate/rdpmate/internal/errors"
	"github.com/rdpmate/rdpmate/internal/logging"
)

// NewCredsCommand groups the credential subcommands.
func NewCredsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Manage stored remote-desktop credentials",
	}

	cmd.AddCommand(
		newCredsSaveCommand(cfg),
		newCredsShowCommand(cfg),
		newCredsDeleteCommand(cfg),
		newCredsListCommand(cfg),
		newCredsGlobalCommand(cfg),
	)
	return cmd
}

func newCredsSaveCommand(cfg *config.Config) *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "save <hostname>",
		Short: "Save credentials for one host",
		Long: `Store credentials for a single host in the Windows Credential Manager
under its TERMSRV/ target, where the remote desktop client finds them.

A leading DOMAIN\ prefix is stripped before saving; the per-host entry
holds the bare account name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			var err error
			if username == "" {
				if username, err = promptUsername(); err != nil {
					return err
				}
			}
			if username == "" {
				return rderrors.UserError{
					Message:    "Username is required",
					Suggestion: "Pass --username or enter one at the prompt",
				}
			}
			if !cmd.Flags().Changed("password") {
				if password, err = promptPassword(); err != nil {
					return err
				}
			}
			cfg.Logger.Protect(password)
			cfg.Logger.Debug("saving credentials for %s as %s (password %s, %d chars)",
				args[0], username, logging.Secret(password), len(password))

			m := newManager(cfg)
			if err := m.SaveHost(args[0], username, password); err != nil {
				return rderrors.VaultError("write", err)
			}
			cfg.Logger.Info("saved credentials for %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (DOMAIN\\user, user@domain, or bare)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted without echo when omitted)")
	return cmd
}

func newCredsShowCommand(cfg *config.Config) *cobra.Command {
	var showSecret bool

	cmd := &cobra.Command{
		Use:   "show <hostname>",
		Short: "Show which credentials a connection to a host would use",
		Long: `Resolve the credentials for a host: the per-host entry when present,
otherwise the application-wide entry. Prints the username only unless
--show-secret is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			m := newManager(cfg)
			cred, err := m.Resolve(args[0])
			if err != nil {
				return rderrors.VaultError("read", err)
			}
			if cred == nil {
				// Absence is a normal state, not an error.
				cfg.Logger.Info("no credentials saved for %s", args[0])
				return nil
			}

			source := "per-host"
			if cred.Target == m.GlobalTarget() {
				source = "global"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "username: %s (%s)\n", cred.Username, source)
			if showSecret {
				fmt.Fprintf(cmd.OutOrStdout(), "password: %s\n", cred.Secret)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSecret, "show-secret", false, "Also print the password")
	return cmd
}

func newCredsDeleteCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <hostname>",
		Short: "Delete the per-host credentials for a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			m := newManager(cfg)
			existing, err := m.ReadHost(args[0])
			if err != nil {
				return rderrors.VaultError("read", err)
			}
			if existing == nil {
				// Nothing to delete is a normal state, not an error.
				cfg.Logger.Info("no credentials saved for %s", args[0])
				return nil
			}
			if err := m.DeleteHost(args[0]); err != nil {
				return rderrors.VaultError("delete", err)
			}
			cfg.Logger.Info("deleted credentials for %s", args[0])
			return nil
		},
	}
}

func newCredsListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hosts that have saved credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			m := newManager(cfg)
			hostnames, err := m.ListHosts()
			if err != nil {
				return rderrors.VaultError("enumerate", err)
			}
			for _, h := range hostnames {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}
}

func newCredsGlobalCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "global",
		Short: "Manage the application-wide fallback credentials",
	}

	var (
		username string
		password string
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Set the fallback credentials used when a host has none of its own",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			var err error
			if username == "" {
				if username, err = promptUsername(); err != nil {
					return err
				}
			}
			if username == "" {
				return rderrors.UserError{
					Message:    "Username is required",
					Suggestion: "Pass --username or enter one at the prompt",
				}
			}
			if !cmd.Flags().Changed("password") {
				if password, err = promptPassword(); err != nil {
					return err
				}
			}
			cfg.Logger.Protect(password)

			m := newManager(cfg)
			if err := m.SaveGlobal(username, password); err != nil {
				return rderrors.VaultError("write", err)
			}
			cfg.Logger.Info("saved global credentials")
			return nil
		},
	}
	setCmd.Flags().StringVar(&username, "username", "", "Username")
	setCmd.Flags().StringVar(&password, "password", "", "Password (prompted without echo when omitted)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the fallback credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			m := newManager(cfg)
			if err := m.DeleteGlobal(); err != nil {
				return rderrors.VaultError("delete", err)
			}
			cfg.Logger.Info("cleared global credentials")
			return nil
		},
	}

	cmd.AddCommand(setCmd, clearCmd)
	return cmd
}
