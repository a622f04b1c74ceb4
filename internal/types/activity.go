package types

import "fmt"

type ActivityType string

const (
	DepositActivity       ActivityType = "deposit"
	WithdrawalActivity    ActivityType = "withdrawal"
	GuardianAddedActivity ActivityType = "guardian_added"
)

func (t ActivityType) ToString() string {
	return string(t)
}

func FromStringToActivityType(s string) (ActivityType, error) {
	switch s {
	case "deposit":
		return DepositActivity, nil
	case "withdrawal":
		return WithdrawalActivity, nil
	case "guardian_added":
		return GuardianAddedActivity, nil
	default:
		return "", fmt.Errorf("invalid activity type: %s", s)
	}
}
