//go:build !windows

package vault

// NewNative returns a stub Store on platforms without the Windows
// Credential Manager. Every operation fails with ErrUnsupportedPlatform;
// cross-platform secret storage is out of scope for this application.
func NewNative() Store {
	return &unsupportedStore{}
}

type unsupportedStore struct{}

func (s *unsupportedStore) Save(target, username, secret string) error {
	return &StoreError{Op: OpSave, Target: target, Err: ErrUnsupportedPlatform}
}

func (s *unsupportedStore) Read(target string) (*Credential, error) {
	return nil, &StoreError{Op: OpRead, Target: target, Err: ErrUnsupportedPlatform}
}

func (s *unsupportedStore) Delete(target string) error {
	return &StoreError{Op: OpDelete, Target: target, Err: ErrUnsupportedPlatform}
}

func (s *unsupportedStore) ListWithPrefix(prefix string) ([]string, error) {
	return nil, &StoreError{Op: OpList, Target: prefix, Err: ErrUnsupportedPlatform}
}

var _ Store = (*unsupportedStore)(nil)
