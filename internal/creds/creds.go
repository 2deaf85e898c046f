// Package creds decides which vault target a credential lives under and
// how usernames are shaped. It is pure logic over vault.Store: no raw
// buffers, no native calls.
//
// Two target conventions exist. Per-host credentials live under
// "TERMSRV/" + hostname, the exact key mstsc consults for single
// sign-on, so the literal prefix is not configurable. Application-wide
// credentials live under one fixed target and act as the fallback when
// a host has no record of its own.
package creds

import (
	"sort"
	"strings"

	"github.com/rdpmate/rdpmate/internal/vault"
)

// DefaultGlobalTarget is the vault target for application-wide
// credentials. Installations that need to coexist override it via
// configuration.
const DefaultGlobalTarget = "RDPMate"

// HostTargetPrefix is the target prefix the OS remote-desktop client
// uses for per-host lookups. Fixed by Windows, not by this program.
const HostTargetPrefix = "TERMSRV/"

// HostTarget returns the vault target for a hostname.
func HostTarget(hostname string) string {
	return HostTargetPrefix + hostname
}

// ParseUsername splits raw into (domain, user). "DOMAIN\user" splits on
// the first backslash; "user@domain" splits on the first @ with the
// swapped order of the two conventions; anything else is a bare user
// with an empty domain. Never fails.
func ParseUsername(raw string) (domain, user string) {
	if before, after, ok := strings.Cut(raw, `\`); ok {
		return before, after
	}
	if before, after, ok := strings.Cut(raw, "@"); ok {
		return after, before
	}
	return "", raw
}

// Manager implements the credential policy over a vault.Store.
type Manager struct {
	store        vault.Store
	globalTarget string
}

// NewManager builds a Manager. globalTarget may be empty, in which case
// DefaultGlobalTarget is used.
func NewManager(store vault.Store, globalTarget string) *Manager {
	if globalTarget == "" {
		globalTarget = DefaultGlobalTarget
	}
	return &Manager{store: store, globalTarget: globalTarget}
}

// GlobalTarget returns the configured application-wide target name.
func (m *Manager) GlobalTarget() string {
	return m.globalTarget
}

// Resolve finds the credentials to use for hostname: the per-host
// record if present, otherwise the global record, otherwise nil. A hard
// store error aborts immediately without attempting the fallback; only
// genuine absence falls through.
func (m *Manager) Resolve(hostname string) (*vault.Credential, error) {
	cred, err := m.store.Read(HostTarget(hostname))
	if err != nil {
		return nil, err
	}
	if cred != nil {
		return cred, nil
	}
	return m.store.Read(m.globalTarget)
}

// SaveHost stores credentials for one host. A leading "domain\" is
// stripped first: the per-host store is domain-agnostic by convention,
// holding only the bare account name.
func (m *Manager) SaveHost(hostname, username, secret string) error {
	if strings.Contains(username, `\`) {
		_, username = ParseUsername(username)
	}
	return m.store.Save(HostTarget(hostname), username, secret)
}

// SaveGlobal stores the application-wide fallback credentials.
func (m *Manager) SaveGlobal(username, secret string) error {
	return m.store.Save(m.globalTarget, username, secret)
}

// ReadHost returns the per-host record only, without the global
// fallback. Nil means no record.
func (m *Manager) ReadHost(hostname string) (*vault.Credential, error) {
	return m.store.Read(HostTarget(hostname))
}

// DeleteHost removes the per-host record. Idempotent.
func (m *Manager) DeleteHost(hostname string) error {
	return m.store.Delete(HostTarget(hostname))
}

// DeleteGlobal removes the application-wide record. Idempotent.
func (m *Manager) DeleteGlobal() error {
	return m.store.Delete(m.globalTarget)
}

// ListHosts returns the hostnames that have per-host credentials,
// sorted for stable output. Enumeration order from the vault itself is
// undefined. Entries that stop matching the prefix between enumeration
// and inspection are skipped.
func (m *Manager) ListHosts() ([]string, error) {
	targets, err := m.store.ListWithPrefix(HostTargetPrefix)
	if err != nil {
		return nil, err
	}

	hosts := make([]string, 0, len(targets))
	for _, target := range targets {
		name, ok := strings.CutPrefix(target, HostTargetPrefix)
		if !ok {
			continue
		}
		hosts = append(hosts, name)
	}
	sort.Strings(hosts)
	return hosts, nil
}

// Reset deletes every per-host record and the global record. Used when
// the application is reset to a clean state; individual deletes are
// idempotent so a partial earlier reset does not fail this one.
func (m *Manager) Reset() error {
	targets, err := m.store.ListWithPrefix(HostTargetPrefix)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := m.store.Delete(target); err != nil {
			return err
		}
	}
	return m.store.Delete(m.globalTarget)
}
