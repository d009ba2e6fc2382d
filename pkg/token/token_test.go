package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	InitSecretKey("test-secret")

	payload := TokenPayload{Scope: "ingest-admin", IssuedAt: 1700000000}
	sig, err := GenerateSignature(payload)
	require.NoError(t, err)
	assert.True(t, ValidateSignature(payload, sig))

	// 篡改payload后签名失效
	tampered := payload
	tampered.IssuedAt++
	assert.False(t, ValidateSignature(tampered, sig))

	tampered = payload
	tampered.Scope = "other-scope"
	assert.False(t, ValidateSignature(tampered, sig))
}

func TestValidateSignatureRejectsGarbage(t *testing.T) {
	InitSecretKey("test-secret")
	payload := TokenPayload{Scope: "ingest-admin", IssuedAt: 1700000000}
	assert.False(t, ValidateSignature(payload, "not-base64-!!!"))
	assert.False(t, ValidateSignature(payload, ""))
}

func TestDifferentSecretsProduceDifferentSignatures(t *testing.T) {
	payload := TokenPayload{Scope: "ingest-admin", IssuedAt: 1700000000}

	InitSecretKey("secret-a")
	sigA, err := GenerateSignature(payload)
	require.NoError(t, err)

	InitSecretKey("secret-b")
	sigB, err := GenerateSignature(payload)
	require.NoError(t, err)

	assert.NotEqual(t, sigA, sigB)
	assert.True(t, ValidateSignature(payload, sigB))
	assert.False(t, ValidateSignature(payload, sigA))
}
