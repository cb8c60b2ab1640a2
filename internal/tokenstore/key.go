package tokenstore

import (
	"fmt"
	"os"

	"shopfront/internal/common"
	"shopfront/internal/cryptox"
)

const (
	secretLen = 32
	saltLen   = 16
)

// LoadOrCreateKey returns the sealing key for the token store. The backing
// secret and salt live in a single file at path; on first run they are
// generated and written with owner-only permissions.
func LoadOrCreateKey(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		raw = common.GenerateRandByteArray(secretLen + saltLen)
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			return nil, fmt.Errorf("writing key file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	if len(raw) != secretLen+saltLen {
		return nil, fmt.Errorf("key file %s is corrupted", path)
	}

	return cryptox.DeriveKey(raw[:secretLen], raw[secretLen:]), nil
}
