package token_test

import (
	"testing"
	"time"

	"deliveryhub/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := token.NewService("test-signing-key", "deliveryhub", time.Hour)

	signed, err := svc.Generate("courier-42", "courier")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "courier-42", claims.Subject)
	assert.Equal(t, "courier", claims.Role)
	assert.Equal(t, "deliveryhub", claims.Issuer)
}

func TestService_Validate_RejectsWrongKey(t *testing.T) {
	issued := token.NewService("key-one", "deliveryhub", time.Hour)
	verifier := token.NewService("key-two", "deliveryhub", time.Hour)

	signed, err := issued.Generate("store-7", "store")
	require.NoError(t, err)

	_, err = verifier.Validate(signed)
	assert.Error(t, err)
}

func TestService_Validate_RejectsExpired(t *testing.T) {
	svc := token.NewService("test-signing-key", "deliveryhub", -time.Minute)

	signed, err := svc.Generate("customer-9", "customer")
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.Error(t, err)
}
