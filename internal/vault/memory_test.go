package vault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdpmate/rdpmate/internal/vault"
	"github.com/rdpmate/rdpmate/internal/wide"
)

func TestSaveReadRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		secret   string
	}{
		{name: "ascii", username: "alice", secret: "hunter2"},
		{name: "empty_secret", username: "alice", secret: ""},
		{name: "domain_username", username: "CORP\\alice", secret: "pw"},
		{name: "non_ascii_secret", username: "bob", secret: "pässwörd密"},
		{name: "surrogate_pair_secret", username: "bob", secret: "\U0001F511key"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := vault.NewMemory()
			require.NoError(t, store.Save("TERMSRV/host1", tt.username, tt.secret))

			cred, err := store.Read("TERMSRV/host1")
			require.NoError(t, err)
			require.NotNil(t, cred)
			assert.Equal(t, tt.username, cred.Username)
			assert.Equal(t, tt.secret, cred.Secret)
		})
	}
}

func TestReadAbsentIsNotAnError(t *testing.T) {
	t.Parallel()

	store := vault.NewMemory()

	cred, err := store.Read("TERMSRV/never-written")
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestOverwriteLastWriteWins(t *testing.T) {
	t.Parallel()

	store := vault.NewMemory()
	require.NoError(t, store.Save("t", "u1", "p1"))
	require.NoError(t, store.Save("t", "u2", "p2"))

	cred, err := store.Read("t")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "u2", cred.Username)
	assert.Equal(t, "p2", cred.Secret)
}

func TestDeleteThenRead(t *testing.T) {
	t.Parallel()

	store := vault.NewMemory()
	require.NoError(t, store.Save("t", "u", "p"))
	require.NoError(t, store.Delete("t"))

	cred, err := store.Read("t")
	require.NoError(t, err)
	assert.Nil(t, cred)

	// Deleting again is still a success.
	require.NoError(t, store.Delete("t"))
}

func TestListWithPrefix(t *testing.T) {
	t.Parallel()

	store := vault.NewMemory()
	require.NoError(t, store.Save("TERMSRV/a.example.com", "u", "p"))
	require.NoError(t, store.Save("TERMSRV/b.example.com", "u", "p"))
	require.NoError(t, store.Save("RDPMate", "u", "p"))

	targets, err := store.ListWithPrefix("TERMSRV/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"TERMSRV/a.example.com", "TERMSRV/b.example.com"}, targets)
}

func TestSaveValidation(t *testing.T) {
	t.Parallel()

	store := vault.NewMemory()

	err := store.Save("", "u", "p")
	assert.ErrorIs(t, err, vault.ErrEmptyTarget)

	err = store.Save("t", "", "p")
	assert.ErrorIs(t, err, vault.ErrEmptyUsername)
}

func TestErrorInjection(t *testing.T) {
	t.Parallel()

	cause := errors.New("vault offline")
	store := vault.NewMemory()
	store.ReadErr = cause

	_, err := store.Read("t")
	require.Error(t, err)

	var storeErr *vault.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, vault.OpRead, storeErr.Op)
	assert.Equal(t, "t", storeErr.Target)
	assert.ErrorIs(t, err, cause)
}

func TestCorruptBlobSurfacesEncodingError(t *testing.T) {
	t.Parallel()

	store := vault.NewMemory()
	store.SetBlob("t", "u", []byte{'a', 0, 'b'}) // odd byte count

	_, err := store.Read("t")
	require.Error(t, err)

	var encErr *wide.EncodingError
	assert.ErrorAs(t, err, &encErr, "decode failure must be an EncodingError, not a misparse")
}

func TestStoreErrorMessageOmitsSecret(t *testing.T) {
	t.Parallel()

	err := &vault.StoreError{Op: vault.OpSave, Target: "TERMSRV/h", Err: errors.New("refused")}
	assert.NotContains(t, err.Error(), "hunter2")
	assert.Contains(t, err.Error(), "TERMSRV/h")
	assert.Contains(t, err.Error(), "save")
}
