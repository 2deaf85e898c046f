//go:build windows

package vault

import (
	"errors"
	"strings"

	"github.com/danieljoos/wincred"

	"github.com/rdpmate/rdpmate/internal/wide"
)

// nativeStore talks to the Windows Credential Manager through the
// wincred bindings. Records are written as generic credentials with
// local-machine persistence so they survive reboot and are picked up
// by mstsc when stored under a TERMSRV/ target.
type nativeStore struct{}

// NewNative returns the Store backed by the Windows Credential Manager.
// The value holds no state; every call is a self-contained transaction
// against the vault and sharing one instance across goroutines is safe.
func NewNative() Store {
	return &nativeStore{}
}

func (s *nativeStore) Save(target, username, secret string) error {
	if target == "" {
		return &StoreError{Op: OpSave, Target: target, Err: ErrEmptyTarget}
	}
	if username == "" {
		return &StoreError{Op: OpSave, Target: target, Err: ErrEmptyUsername}
	}

	cred := wincred.NewGenericCredential(target)
	cred.UserName = username
	cred.CredentialBlob = wide.EncodeBytes(secret)
	cred.Persist = wincred.PersistLocalMachine

	if err := cred.Write(); err != nil {
		return &StoreError{Op: OpSave, Target: target, Err: err}
	}
	return nil
}

func (s *nativeStore) Read(target string) (*Credential, error) {
	if target == "" {
		return nil, &StoreError{Op: OpRead, Target: target, Err: ErrEmptyTarget}
	}

	// GetGenericCredential copies the vault-allocated structure into Go
	// memory and frees the native buffer before returning, so nothing
	// here outlives the call.
	cred, err := wincred.GetGenericCredential(target)
	if err != nil {
		if errors.Is(err, wincred.ErrElementNotFound) {
			return nil, nil
		}
		return nil, &StoreError{Op: OpRead, Target: target, Err: err}
	}

	secret, err := wide.Decode(cred.CredentialBlob, len(cred.CredentialBlob))
	if err != nil {
		return nil, &StoreError{Op: OpRead, Target: target, Err: err}
	}
	return &Credential{
		Target:   target,
		Username: cred.UserName,
		Secret:   secret,
	}, nil
}

func (s *nativeStore) Delete(target string) error {
	if target == "" {
		return &StoreError{Op: OpDelete, Target: target, Err: ErrEmptyTarget}
	}

	cred := wincred.NewGenericCredential(target)
	if err := cred.Delete(); err != nil {
		// Deleting something already gone is a success; reset and
		// delete commands rely on being idempotent.
		if errors.Is(err, wincred.ErrElementNotFound) {
			return nil
		}
		return &StoreError{Op: OpDelete, Target: target, Err: err}
	}
	return nil
}

func (s *nativeStore) ListWithPrefix(prefix string) ([]string, error) {
	// Enumerate everything and filter here. The vault's own filter
	// syntax matches wildcards differently from a plain prefix, so the
	// prefix test stays on this side of the boundary. wincred frees
	// the CredEnumerate buffer on every exit path.
	creds, err := wincred.List()
	if err != nil {
		return nil, &StoreError{Op: OpList, Target: prefix, Err: err}
	}

	var targets []string
	for _, c := range creds {
		if strings.HasPrefix(c.TargetName, prefix) {
			targets = append(targets, c.TargetName)
		}
	}
	return targets, nil
}

var _ Store = (*nativeStore)(nil)
