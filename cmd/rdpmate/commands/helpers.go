package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rdpmate/rdpmate/internal/config"
	"github.com/rdpmate/rdpmate/internal/creds"
)

// newManager builds the policy-layer manager over the configured store.
func newManager(cfg *config.Config) *creds.Manager {
	return creds.NewManager(cfg.VaultStore(), cfg.Definition.GlobalTarget)
}

// promptUsername reads a username from stdin when none was given via flag.
func promptUsername() (string, error) {
	fmt.Fprint(os.Stderr, "Username: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading username: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing it.
func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

// removeHostsFile deletes the host list file; a missing file is fine.
func removeHostsFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting host list: %w", err)
	}
	return nil
}
