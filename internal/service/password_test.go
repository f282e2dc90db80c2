package service

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restorePasswordGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead = rand.Read
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "other"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestGenerateRandomPassword(t *testing.T) {
	t.Cleanup(restorePasswordGlobals)

	p1, err := GenerateRandomPassword()
	require.NoError(t, err)
	require.Len(t, p1, generatedPasswordLength)
	for _, ch := range p1 {
		require.Contains(t, passwordCharset, string(ch))
	}

	p2, err := GenerateRandomPassword()
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)

	randRead = func([]byte) (int, error) { return 0, errors.New("rand") }
	_, err = GenerateRandomPassword()
	require.Error(t, err)
}
