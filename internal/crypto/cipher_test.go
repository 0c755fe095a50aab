package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestEncryptDecrypt_Roundtrip(t *testing.T) {
	plaintext := []byte("access-token-value")

	encrypted, err := Encrypt(plaintext, testKey())
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, encrypted)
	assert.GreaterOrEqual(t, len(encrypted), NonceSize+len(plaintext))

	decrypted, err := Decrypt(encrypted, testKey())
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncrypt_UniqueNonce(t *testing.T) {
	plaintext := []byte("same input")

	first, err := Encrypt(plaintext, testKey())
	require.NoError(t, err)
	second, err := Encrypt(plaintext, testKey())
	require.NoError(t, err)

	// random nonce means two encryptions never match
	assert.NotEqual(t, first, second)
}

func TestDecrypt_WrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret"), testKey())
	require.NoError(t, err)

	wrongKey := bytes.Repeat([]byte{0x13}, 32)
	_, err = Decrypt(encrypted, wrongKey)
	assert.Error(t, err)
}

func TestEncrypt_Validation(t *testing.T) {
	_, err := Encrypt(nil, testKey())
	assert.Error(t, err)

	_, err = Encrypt([]byte("data"), []byte("short"))
	assert.Error(t, err)
}

func TestDecrypt_Validation(t *testing.T) {
	_, err := Decrypt([]byte("short"), testKey())
	assert.Error(t, err)

	_, err = Decrypt(bytes.Repeat([]byte{0x01}, 32), []byte("short"))
	assert.Error(t, err)
}

func TestBase64_Roundtrip(t *testing.T) {
	plaintext := []byte("refresh-token-value")

	encoded, err := EncryptToBase64(plaintext, testKey())
	require.NoError(t, err)

	decrypted, err := DecryptFromBase64(encoded, testKey())
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)

	_, err = DecryptFromBase64("not-valid-base64!!!", testKey())
	assert.Error(t, err)
}
