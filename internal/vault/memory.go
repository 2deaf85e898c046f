package vault

import (
	"strings"
	"sync"

	"github.com/rdpmate/rdpmate/internal/wide"
)

// Memory is an in-memory Store for tests and non-Windows development.
// It stores the encoded UTF-16LE blob rather than the plain secret so
// that reads exercise the same marshaling path as the native store.
//
// The error fields allow failure injection: when set, the matching
// operation fails with that error wrapped in a StoreError.
type Memory struct {
	mu      sync.RWMutex
	records map[string]memoryRecord

	SaveErr   error
	ReadErr   error
	DeleteErr error
	ListErr   error
}

type memoryRecord struct {
	username string
	blob     []byte
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]memoryRecord)}
}

func (m *Memory) Save(target, username, secret string) error {
	if m.SaveErr != nil {
		return &StoreError{Op: OpSave, Target: target, Err: m.SaveErr}
	}
	if target == "" {
		return &StoreError{Op: OpSave, Target: target, Err: ErrEmptyTarget}
	}
	if username == "" {
		return &StoreError{Op: OpSave, Target: target, Err: ErrEmptyUsername}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[target] = memoryRecord{
		username: username,
		blob:     wide.EncodeBytes(secret),
	}
	return nil
}

func (m *Memory) Read(target string) (*Credential, error) {
	if m.ReadErr != nil {
		return nil, &StoreError{Op: OpRead, Target: target, Err: m.ReadErr}
	}

	m.mu.RLock()
	rec, ok := m.records[target]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	secret, err := wide.Decode(rec.blob, len(rec.blob))
	if err != nil {
		return nil, &StoreError{Op: OpRead, Target: target, Err: err}
	}
	return &Credential{Target: target, Username: rec.username, Secret: secret}, nil
}

func (m *Memory) Delete(target string) error {
	if m.DeleteErr != nil {
		return &StoreError{Op: OpDelete, Target: target, Err: m.DeleteErr}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, target)
	return nil
}

func (m *Memory) ListWithPrefix(prefix string) ([]string, error) {
	if m.ListErr != nil {
		return nil, &StoreError{Op: OpList, Target: prefix, Err: m.ListErr}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	var targets []string
	for target := range m.records {
		if strings.HasPrefix(target, prefix) {
			targets = append(targets, target)
		}
	}
	return targets, nil
}

// SetBlob overwrites the stored blob for target, bypassing encoding.
// Tests use it to plant corrupt vault data.
func (m *Memory) SetBlob(target, username string, blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[target] = memoryRecord{username: username, blob: blob}
}

var _ Store = (*Memory)(nil)
