package utils

import (
	"github.com/spendvault/custody-api-service/internal/types"
)

// QualifiedStatesToApproved returns the qualified existing states to transition to "approved".
// Promotion happens automatically when the signature count reaches the stored quorum.
func QualifiedStatesToApproved() []types.WithdrawalStatus {
	return []types.WithdrawalStatus{types.Pending}
}

// QualifiedStatesToExecuted returns the qualified existing states to transition to "executed".
// A request must have collected quorum before the on-chain execution is recorded.
func QualifiedStatesToExecuted() []types.WithdrawalStatus {
	return []types.WithdrawalStatus{types.Approved}
}

// QualifiedStatesToRejected returns the qualified existing states to transition to "rejected".
func QualifiedStatesToRejected() []types.WithdrawalStatus {
	return []types.WithdrawalStatus{types.Pending, types.Approved}
}

// TerminalStates returns the states that admit no further transitions. Only
// records in these states are eligible for age-based cleanup.
func TerminalStates() []types.WithdrawalStatus {
	return []types.WithdrawalStatus{types.Executed, types.Rejected}
}
