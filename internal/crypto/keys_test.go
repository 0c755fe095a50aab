package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	first, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, first, SaltSize)

	second, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDeriveDeviceKey_Deterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	first, err := DeriveDeviceKey("passphrase", "terminal-01", salt)
	require.NoError(t, err)
	assert.Len(t, first, Argon2KeyLen)

	second, err := DeriveDeviceKey("passphrase", "terminal-01", salt)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeriveDeviceKey_InputsMatter(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	otherSalt, err := GenerateSalt()
	require.NoError(t, err)

	base, err := DeriveDeviceKey("passphrase", "terminal-01", salt)
	require.NoError(t, err)

	otherPass, err := DeriveDeviceKey("different", "terminal-01", salt)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherPass)

	otherDevice, err := DeriveDeviceKey("passphrase", "terminal-02", salt)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherDevice)

	otherSaltKey, err := DeriveDeviceKey("passphrase", "terminal-01", otherSalt)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSaltKey)
}

func TestDeriveDeviceKey_Validation(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveDeviceKey("", "terminal-01", salt)
	assert.Error(t, err)

	_, err = DeriveDeviceKey("passphrase", "", salt)
	assert.Error(t, err)

	_, err = DeriveDeviceKey("passphrase", "terminal-01", []byte("short"))
	assert.Error(t, err)
}
