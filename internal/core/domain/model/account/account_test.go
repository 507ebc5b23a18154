package account_test

import (
	"testing"

	"deliveryhub/internal/core/domain/model/account"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		acc, err := account.NewAccount("Maria Silva", "Maria@Example.com", " 5511999990000 ", "hash")

		require.NoError(t, err)
		require.NoError(t, acc.Validate())
		assert.Equal(t, "Maria Silva", acc.Name())
		assert.Equal(t, "maria@example.com", acc.Email())
		assert.Equal(t, "5511999990000", acc.Phone())
		assert.Equal(t, "hash", acc.PasswordHash())
	})

	t.Run("phone is optional", func(t *testing.T) {
		acc, err := account.NewAccount("Maria", "maria@example.com", "", "hash")

		require.NoError(t, err)
		assert.Empty(t, acc.Phone())
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := account.NewAccount("  ", "maria@example.com", "", "hash")
		assert.ErrorIs(t, err, account.ErrNameIsRequired)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := account.NewAccount("Maria", "not-an-email", "", "hash")
		assert.ErrorIs(t, err, account.ErrEmailIsInvalid)
	})

	t.Run("missing password hash", func(t *testing.T) {
		_, err := account.NewAccount("Maria", "maria@example.com", "", "")
		assert.ErrorIs(t, err, account.ErrPasswordHashIsRequired)
	})
}

func TestAccount_Validate_ZeroValue(t *testing.T) {
	var acc account.Account

	assert.ErrorIs(t, acc.Validate(), account.ErrAccountIsNotConstructed)
}
