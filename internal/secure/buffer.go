// Package secure holds resolved secrets in protected memory for the
// short window between reading them from the vault and using them.
// It wraps memguard: secrets are encrypted at rest in memory, kept off
// swap where the platform allows, and wiped on destruction.
package secure

import (
	"sync"

	"github.com/awnumar/memguard"
)

// Buffer is a protected container for one secret.
type Buffer struct {
	enclave *memguard.Enclave
	mu      sync.RWMutex
	// destroyed makes Destroy idempotent and blocks use afterwards
	destroyed bool
}

// NewBuffer copies data into a protected enclave. The caller should
// stop referencing the original bytes afterwards. An empty secret is
// valid input: memguard has no enclave for zero-length data, so the
// buffer starts in the same empty state a destroyed buffer opens to.
func NewBuffer(data []byte) *Buffer {
	if len(data) == 0 {
		return &Buffer{}
	}
	return &Buffer{enclave: memguard.NewEnclave(data)}
}

// NewBufferFromString copies a secret string into a protected enclave.
func NewBufferFromString(s string) *Buffer {
	return NewBuffer([]byte(s))
}

// Open decrypts the secret into a locked buffer. The caller must call
// Destroy on the returned buffer when done:
//
//	locked, err := buf.Open()
//	if err != nil {
//	    return err
//	}
//	defer locked.Destroy()
//	use(locked.String())
func (b *Buffer) Open() (*memguard.LockedBuffer, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.destroyed || b.enclave == nil {
		return memguard.NewBufferFromBytes([]byte{}), nil
	}
	return b.enclave.Open()
}

// Destroy drops the enclave and prevents further use. Idempotent. For
// full cleanup of all protected memory at exit, main defers
// memguard.Purge().
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.destroyed {
		return
	}
	b.enclave = nil
	b.destroyed = true
}
