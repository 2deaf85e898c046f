// Package config loads the rdpmate.yaml runtime configuration and
// carries the shared state commands need.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	rderrors "github.com/rdpmate/rdpmate/internal/errors"
	"github.com/rdpmate/rdpmate/internal/logging"
	"github.com/rdpmate/rdpmate/internal/vault"
)

// Config holds the runtime configuration.
type Config struct {
	Path   string
	Logger *logging.Logger

	// Store is the credential store commands operate on. Left nil, it
	// is created lazily from the native vault; tests inject a Memory
	// store here.
	Store vault.Store

	Definition Definition
}

// Definition represents the rdpmate.yaml structure.
type Definition struct {
	// GlobalTarget overrides the vault target for application-wide
	// credentials. Empty means the built-in default.
	GlobalTarget string `yaml:"global_target,omitempty"`

	// HostsFile is the path of the CSV host list.
	HostsFile string `yaml:"hosts_file,omitempty"`

	RDP RDPOptions `yaml:"rdp,omitempty"`
}

// RDPOptions are the session options written into generated .rdp files.
type RDPOptions struct {
	Fullscreen bool `yaml:"fullscreen,omitempty"`
	Width      int  `yaml:"width,omitempty"`
	Height     int  `yaml:"height,omitempty"`
}

// Load reads and validates the configuration file at Path. A missing
// file is not an error: defaults apply, matching first-run behavior.
func (c *Config) Load() error {
	c.applyDefaults()

	data, err := os.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return rderrors.ConfigError{
			Field:   "config",
			Value:   c.Path,
			Message: fmt.Sprintf("cannot read config file: %v", err),
		}
	}

	if err := yaml.Unmarshal(data, &c.Definition); err != nil {
		return rderrors.ConfigError{
			Field:      "config",
			Value:      c.Path,
			Message:    "invalid YAML",
			Suggestion: "Check for indentation errors and missing quotes",
		}
	}

	c.applyDefaults()
	return c.validate()
}

func (c *Config) applyDefaults() {
	if c.Definition.HostsFile == "" {
		c.Definition.HostsFile = defaultHostsFile()
	}
	if c.Definition.RDP.Width == 0 {
		c.Definition.RDP.Width = 1280
	}
	if c.Definition.RDP.Height == 0 {
		c.Definition.RDP.Height = 800
	}
}

func (c *Config) validate() error {
	if c.Definition.RDP.Width < 0 || c.Definition.RDP.Height < 0 {
		return rderrors.ConfigError{
			Field:      "rdp",
			Message:    "width and height must be positive",
			Suggestion: "Remove the rdp section to use the defaults",
		}
	}
	return nil
}

// VaultStore returns the configured credential store, creating the
// native one on first use.
func (c *Config) VaultStore() vault.Store {
	if c.Store == nil {
		c.Store = vault.NewNative()
	}
	return c.Store
}

func defaultHostsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "hosts.csv"
	}
	return filepath.Join(dir, "rdpmate", "hosts.csv")
}
