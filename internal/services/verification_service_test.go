package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationService_HashAndVerify(t *testing.T) {
	vs := NewVerificationService()

	hash, err := vs.Hash("1234")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, vs.Verify("1234", hash))
	assert.False(t, vs.Verify("4321", hash))
	assert.False(t, vs.Verify("1234", "not-a-hash"))
}

func TestVerificationService_HashRejectsMalformedCodes(t *testing.T) {
	vs := NewVerificationService()

	for _, code := range []string{"", "12", "12345", "abcd", "12a4"} {
		_, err := vs.Hash(code)
		assert.ErrorIs(t, err, ErrInvalidVerificationCode, "code %q", code)
	}
}

func TestVerificationService_HashesAreSalted(t *testing.T) {
	vs := NewVerificationService()

	first, err := vs.Hash("1234")
	require.NoError(t, err)
	second, err := vs.Hash("1234")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, vs.Verify("1234", first))
	assert.True(t, vs.Verify("1234", second))
}
