package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for device-key derivation
const (
	// Argon2Time - number of iterations (time cost)
	Argon2Time = 1
	// Argon2Memory - memory in KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - number of parallel threads
	Argon2Threads = 4
	// Argon2KeyLen - output key length in bytes
	Argon2KeyLen = 32
	// SaltSize - salt size in bytes
	SaltSize = 32
)

// GenerateSalt generates a cryptographically random salt
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// DeriveDeviceKey derives the 32-byte key that protects platform
// credentials at rest on this terminal. The same passphrase, device ID,
// and salt always produce the same key.
func DeriveDeviceKey(passphrase, deviceID string, salt []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	if deviceID == "" {
		return nil, fmt.Errorf("device ID cannot be empty")
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	// bind the key to the terminal so a copied database file is useless
	// without both the passphrase and the device identity
	input := []byte(passphrase + deviceID)

	return argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen), nil
}
