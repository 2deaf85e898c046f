// Package vault isolates access to the Windows Credential Manager
// behind a small capability set. Everything raw about the native vault
// (wide-character blobs, enumeration memory, error codes) stays inside
// this package; callers pass and receive plain strings.
package vault

import (
	"errors"
	"fmt"
)

// Credential is one record as the vault holds it. The secret is the
// decoded text, never the raw blob.
type Credential struct {
	Target   string
	Username string
	Secret   string
}

// Store is the capability set the rest of the application depends on.
// The native Windows implementation and the in-memory implementation
// both satisfy it.
type Store interface {
	// Save writes a record under target, overwriting any existing
	// record for the same target. Username must be non-empty.
	Save(target, username, secret string) error

	// Read looks up target. Absence is not an error: a missing record
	// yields (nil, nil).
	Read(target string) (*Credential, error)

	// Delete removes the record for target. Deleting a target that
	// does not exist is a success; the vault's not-found response is
	// normalized away so callers can delete unconditionally.
	Delete(target string) error

	// ListWithPrefix enumerates all stored records and returns the
	// target names starting with prefix. Order is vault-defined and
	// not stable across calls.
	ListWithPrefix(prefix string) ([]string, error)
}

// Operation names carried by StoreError.
const (
	OpSave   = "save"
	OpRead   = "read"
	OpDelete = "delete"
	OpList   = "list"
)

// StoreError wraps a vault failure with the operation and target (or
// prefix, for list) attempted. It never carries secret material.
type StoreError struct {
	Op     string
	Target string
	Err    error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("credential store %s failed for %q: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("credential store %s failed for %q", e.Op, e.Target)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Sentinel errors surfaced by Store implementations.
var (
	ErrUnsupportedPlatform = errors.New("credential vault not supported on this platform")
	ErrEmptyTarget         = errors.New("target must not be empty")
	ErrEmptyUsername       = errors.New("username must not be empty")
)
