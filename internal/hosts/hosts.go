// Package hosts persists the host list as a CSV file with the columns
// hostname, description, last_connected. The credential layer only ever
// consumes the hostname; the rest is display metadata.
package hosts

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Host is one managed remote-desktop destination. A zero LastConnected
// means never connected.
type Host struct {
	Hostname      string
	Description   string
	LastConnected time.Time
}

// List is the set of known hosts, keyed by hostname.
type List struct {
	hosts map[string]Host
}

// NewList returns an empty host list.
func NewList() *List {
	return &List{hosts: make(map[string]Host)}
}

// Load reads the host list from path. A missing file yields an empty
// list, matching first-run behavior.
func Load(path string) (*List, error) {
	l := NewList()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("opening host list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing host list %s: %w", path, err)
	}

	for i, row := range rows {
		hostname := strings.TrimSpace(row[0])
		if hostname == "" {
			return nil, fmt.Errorf("host list %s: empty hostname on row %d", path, i+1)
		}
		h := Host{Hostname: hostname, Description: row[1]}
		if row[2] != "" {
			ts, err := time.Parse(time.RFC3339, row[2])
			if err != nil {
				return nil, fmt.Errorf("host list %s row %d: bad timestamp %q: %w", path, i+1, row[2], err)
			}
			h.LastConnected = ts
		}
		l.hosts[hostname] = h
	}
	return l, nil
}

// Save writes the list to path, creating parent directories as needed.
// Rows are sorted by hostname so the file diffs cleanly.
func (l *List) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating host list directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("writing host list: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, h := range l.All() {
		last := ""
		if !h.LastConnected.IsZero() {
			last = h.LastConnected.UTC().Format(time.RFC3339)
		}
		if err := w.Write([]string{h.Hostname, h.Description, last}); err != nil {
			return fmt.Errorf("writing host list: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing host list: %w", err)
	}
	return f.Close()
}

// All returns the hosts sorted by hostname.
func (l *List) All() []Host {
	out := make([]Host, 0, len(l.hosts))
	for _, h := range l.hosts {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hostname < out[j].Hostname })
	return out
}

// Get returns the host and whether it exists.
func (l *List) Get(hostname string) (Host, bool) {
	h, ok := l.hosts[hostname]
	return h, ok
}

// Add inserts or replaces a host entry.
func (l *List) Add(h Host) {
	l.hosts[h.Hostname] = h
}

// Remove deletes a host entry. Removing an unknown hostname is a no-op.
func (l *List) Remove(hostname string) {
	delete(l.hosts, hostname)
}

// Touch records a successful connection time for hostname, adding the
// host if it is not yet listed.
func (l *List) Touch(hostname string, at time.Time) {
	h := l.hosts[hostname]
	h.Hostname = hostname
	h.LastConnected = at
	l.hosts[hostname] = h
}

// Len returns the number of hosts.
func (l *List) Len() int {
	return len(l.hosts)
}
