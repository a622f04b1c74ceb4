package types

import "fmt"

type WithdrawalStatus string

const (
	Pending  WithdrawalStatus = "pending"
	Approved WithdrawalStatus = "approved"
	Executed WithdrawalStatus = "executed"
	Rejected WithdrawalStatus = "rejected"
)

func (s WithdrawalStatus) ToString() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s WithdrawalStatus) IsTerminal() bool {
	return s == Executed || s == Rejected
}

func FromStringToWithdrawalStatus(s string) (WithdrawalStatus, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "approved":
		return Approved, nil
	case "executed":
		return Executed, nil
	case "rejected":
		return Rejected, nil
	default:
		return "", fmt.Errorf("invalid withdrawal status: %s", s)
	}
}
