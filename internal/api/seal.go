package api

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// SealPassword encrypts a password against the server's base64-encoded NaCl
// public key using an anonymous sealed box. Only the holder of the matching
// private key can open it.
func SealPassword(password, keyB64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil {
		return "", fmt.Errorf("decode seal key: %w", err)
	}
	if len(raw) != 32 {
		return "", fmt.Errorf("seal key must be 32 bytes, got %d", len(raw))
	}

	var key [32]byte
	copy(key[:], raw)

	sealed, err := box.SealAnonymous(nil, []byte(password), &key, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}
