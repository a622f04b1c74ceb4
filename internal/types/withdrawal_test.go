package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStringToWithdrawalStatus(t *testing.T) {
	for _, value := range []string{"pending", "approved", "executed", "rejected"} {
		status, err := FromStringToWithdrawalStatus(value)
		assert.NoError(t, err, "parsing %q should not fail", value)
		assert.Equal(t, value, status.ToString())
	}

	_, err := FromStringToWithdrawalStatus("cancelled")
	assert.Error(t, err, "unknown statuses should be rejected")

	_, err = FromStringToWithdrawalStatus("Pending")
	assert.Error(t, err, "statuses are case-sensitive on the wire")
}

func TestWithdrawalStatusIsTerminal(t *testing.T) {
	assert.False(t, Pending.IsTerminal())
	assert.False(t, Approved.IsTerminal())
	assert.True(t, Executed.IsTerminal())
	assert.True(t, Rejected.IsTerminal())
}
