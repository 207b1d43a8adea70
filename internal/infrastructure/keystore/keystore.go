// Package keystore loads the process-wide token signing key. The key is
// generated once and reused on every subsequent startup; every process that
// signs or verifies tokens must load the same bytes.
package keystore

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

const keyBytes = 32

// generateKey returns a fresh urlsafe-encoded symmetric key.
func generateKey() ([]byte, error) {
	raw := make([]byte, keyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("keystore: generate key: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(raw)
	return []byte(encoded), nil
}

// LoadFile returns the signing key stored at path, generating and persisting
// a new one on first startup. The file is written with owner-only
// permissions.
func LoadFile(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) == 0 {
			return nil, fmt.Errorf("keystore: key file %s is empty", path)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("keystore: read key file: %w", err)
	}

	key, err = generateKey()
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("keystore: write key file: %w", err)
	}
	return key, nil
}
