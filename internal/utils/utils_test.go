package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendvault/custody-api-service/internal/types"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains([]int{}, 1))
}

func TestNormalizeAddress(t *testing.T) {
	assert.Equal(t,
		"0xabcdef0123456789abcdef0123456789abcdef01",
		NormalizeAddress("0xABCDef0123456789abcDEF0123456789ABCdef01"),
	)
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0xABCDef0123456789abcDEF0123456789ABCdef01"))
	assert.True(t, IsValidAddress("0xabcdef0123456789abcdef0123456789abcdef01"))
	assert.False(t, IsValidAddress("0xabc"), "short addresses are invalid")
	assert.False(t, IsValidAddress(""), "empty addresses are invalid")
	assert.False(t, IsValidAddress("0xzzcdef0123456789abcdef0123456789abcdef01"), "non-hex characters are invalid")
}

func TestIsValidTxHash(t *testing.T) {
	assert.True(t, IsValidTxHash("0x"+strings.Repeat("a", 64)))
	assert.False(t, IsValidTxHash("0x"+strings.Repeat("a", 63)), "too short")
	assert.False(t, IsValidTxHash(strings.Repeat("a", 64)), "missing 0x prefix")
}

func TestIsValidSignatureFormat(t *testing.T) {
	assert.True(t, IsValidSignatureFormat("0x"+strings.Repeat("ab", 65)))
	assert.False(t, IsValidSignatureFormat("0x"+strings.Repeat("ab", 64)), "64 bytes is not a full signature")
	assert.False(t, IsValidSignatureFormat(strings.Repeat("ab", 65)), "missing 0x prefix")
	assert.False(t, IsValidSignatureFormat("0xzz"), "non-hex characters are invalid")
}

func TestStateTransitionTables(t *testing.T) {
	assert.Equal(t, []types.WithdrawalStatus{types.Pending}, QualifiedStatesToApproved())
	assert.Equal(t, []types.WithdrawalStatus{types.Approved}, QualifiedStatesToExecuted())
	assert.Equal(t, []types.WithdrawalStatus{types.Pending, types.Approved}, QualifiedStatesToRejected())
	assert.Equal(t, []types.WithdrawalStatus{types.Executed, types.Rejected}, TerminalStates())
}
