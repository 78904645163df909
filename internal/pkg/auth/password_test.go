package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo", hash)

	assert.NoError(t, CheckPassword(hash, "segredo"))
	assert.Error(t, CheckPassword(hash, "errada"))
}

func TestHashPasswordProducesUniqueHashes(t *testing.T) {
	first, err := HashPassword("segredo")
	require.NoError(t, err)
	second, err := HashPassword("segredo")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
