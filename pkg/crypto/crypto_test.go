package crypto_test

import (
	"testing"

	"github.com/cosmopedia/pkg/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := crypto.HashPassword("p1")
	require.NoError(t, err)

	assert.NotEqual(t, "p1", hash)
	assert.NotContains(t, hash, "p1")
}

func TestCheckPassword(t *testing.T) {
	hash, err := crypto.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, crypto.CheckPassword("correct horse battery staple", hash))
	assert.False(t, crypto.CheckPassword("wrong", hash))
	assert.False(t, crypto.CheckPassword("", hash))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, err := crypto.HashPassword("same")
	require.NoError(t, err)
	h2, err := crypto.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
