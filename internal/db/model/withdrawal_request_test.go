package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendvault/custody-api-service/internal/types"
)

func TestBuildWithdrawalRequestID(t *testing.T) {
	nonce, err := types.NewBigIntFromString("42")
	require.NoError(t, err)

	id := BuildWithdrawalRequestID("0xVaultABC0123456789abcdef0123456789abcdef", nonce, 1700000000000)
	assert.Equal(t, "0xvaultabc0123456789abcdef0123456789abcdef-42-1700000000000", id,
		"the id is built from the lowercased vault address, the nonce and the creation timestamp")

	// Same inputs always produce the same id regardless of address casing.
	again := BuildWithdrawalRequestID("0xVAULTABC0123456789ABCDEF0123456789ABCDEF", nonce, 1700000000000)
	assert.Equal(t, id, again)
}

func TestBuildWithdrawalRequestIDWithHugeNonce(t *testing.T) {
	nonce, err := types.NewBigIntFromString("123456789012345678901234567890")
	require.NoError(t, err)

	id := BuildWithdrawalRequestID("0xabc", nonce, 1)
	assert.Equal(t, "0xabc-123456789012345678901234567890-1", id,
		"nonces beyond 64 bits must not be truncated in the id")
}

func TestHasSignerIsCaseInsensitive(t *testing.T) {
	doc := WithdrawalRequestDocument{
		Signatures: []GuardianSignature{
			{Signer: "0xaaaa000000000000000000000000000000000001", Signature: "0x01"},
		},
	}

	assert.True(t, doc.HasSigner("0xaaaa000000000000000000000000000000000001"))
	assert.True(t, doc.HasSigner("0xAAAA000000000000000000000000000000000001"),
		"the same signer in different casing counts as a duplicate")
	assert.False(t, doc.HasSigner("0xaaaa000000000000000000000000000000000002"))
}
