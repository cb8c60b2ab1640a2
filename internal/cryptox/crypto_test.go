package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shopfront/internal/common"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := common.GenerateRandByteArray(32)
	plaintext := []byte("some.jwt.token")

	ciphertext, nonce, err := Seal(plaintext, key)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)

	got, err := Open(ciphertext, nonce, key)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	key := common.GenerateRandByteArray(32)
	other := common.GenerateRandByteArray(32)

	ciphertext, nonce, err := Seal([]byte("secret"), key)
	require.NoError(t, err)

	_, err = Open(ciphertext, nonce, other)
	require.Error(t, err)
}

func TestSeal_BadKeyLength(t *testing.T) {
	_, _, err := Seal([]byte("x"), []byte("short"))
	require.Error(t, err)
}

func TestDeriveKey_DeterministicPerSalt(t *testing.T) {
	secret := []byte("machine-secret")
	salt := common.GenerateRandByteArray(16)

	a := DeriveKey(secret, salt)
	b := DeriveKey(secret, salt)
	require.Equal(t, a, b)
	require.Len(t, a, 32)

	c := DeriveKey(secret, common.GenerateRandByteArray(16))
	require.NotEqual(t, a, c)
}
