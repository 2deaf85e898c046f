package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdpmate/rdpmate/cmd/rdpmate/commands"
)

func TestDoctorHealthy(t *testing.T) {
	t.Parallel()

	cfg, store := testConfig(t)
	require.NoError(t, store.Save("TERMSRV/a", "u", "p"))

	_, err := runCommand(t, commands.NewDoctorCommand(cfg))
	assert.NoError(t, err)
}

func TestDoctorReportsVaultFailure(t *testing.T) {
	t.Parallel()

	cfg, store := testConfig(t)
	store.ListErr = errors.New("vault offline")

	_, err := runCommand(t, commands.NewDoctorCommand(cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doctor found problems")
}
