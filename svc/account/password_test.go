package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchbase/backend/svc/account"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := account.HashPassword("correct horse", "pepper")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	t.Run("matching password and salt verify", func(t *testing.T) {
		assert.True(t, account.VerifyPassword(hash, "correct horse", "pepper"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		assert.False(t, account.VerifyPassword(hash, "battery staple", "pepper"))
	})

	t.Run("wrong salt fails", func(t *testing.T) {
		assert.False(t, account.VerifyPassword(hash, "correct horse", "salt"))
	})
}
