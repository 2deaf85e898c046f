package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rdpmate/rdpmate/internal/config"
	"github.com/rdpmate/rdpmate/internal/creds"
	rderrors "github.com/rdpmate/rdpmate/internal/errors"
	"github.com/rdpmate/rdpmate/internal/hosts"
	"github.com/rdpmate/rdpmate/internal/rdp"
	"github.com/rdpmate/rdpmate/internal/secure"
)

// NewConnectCommand builds the connect command.
func NewConnectCommand(cfg *config.Config) *cobra.Command {
	var fullscreen bool

	cmd := &cobra.Command{
		Use:   "connect <hostname>",
		Short: "Open a remote desktop session to a host",
		Long: `Resolve credentials for the host (per-host entry first, global entry as
fallback), make sure the TERMSRV/ record is in place for single sign-on,
then generate a session file and launch the remote desktop client.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}
			hostname := args[0]

			m := newManager(cfg)
			cred, err := m.Resolve(hostname)
			if err != nil {
				return rderrors.VaultError("read", err)
			}
			if cred == nil {
				return rderrors.UserError{
					Message:    "No credentials saved for " + hostname,
					Suggestion: "Run 'rdpmate creds save " + hostname + "' or set global credentials",
				}
			}

			// Hold the secret in protected memory while it is needed.
			cfg.Logger.Protect(cred.Secret)
			buf := secure.NewBufferFromString(cred.Secret)
			defer buf.Destroy()
			cred.Secret = ""

			// When the credentials came from the global entry, mirror
			// them to the per-host target so mstsc finds them.
			if cred.Target != creds.HostTarget(hostname) {
				locked, err := buf.Open()
				if err != nil {
					return err
				}
				saveErr := m.SaveHost(hostname, cred.Username, locked.String())
				locked.Destroy()
				if saveErr != nil {
					return rderrors.VaultError("write", saveErr)
				}
			}

			session := rdp.Session{
				Hostname:   hostname,
				Username:   cred.Username,
				Fullscreen: fullscreen || cfg.Definition.RDP.Fullscreen,
				Width:      cfg.Definition.RDP.Width,
				Height:     cfg.Definition.RDP.Height,
			}
			path, err := rdp.WriteFile(os.TempDir(), session)
			if err != nil {
				return err
			}
			if err := rdp.Launch(path); err != nil {
				// The session file is useless without a client; don't
				// leave it behind.
				os.Remove(path)
				return err
			}

			list, err := hosts.Load(cfg.Definition.HostsFile)
			if err != nil {
				return err
			}
			list.Touch(hostname, time.Now())
			if err := list.Save(cfg.Definition.HostsFile); err != nil {
				return err
			}

			cfg.Logger.Info("connecting to %s as %s", hostname, cred.Username)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Open the session fullscreen")
	return cmd
}
