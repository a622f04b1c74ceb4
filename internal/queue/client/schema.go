package client

const (
	DepositQueueName    string = "vault_deposit_queue"
	WithdrawalQueueName string = "vault_withdrawal_queue"
	GuardianQueueName   string = "guardian_change_queue"
)

type EventType int

const (
	DepositEventType    EventType = 1
	WithdrawalEventType EventType = 2
	GuardianEventType   EventType = 3
)

// VaultDepositEvent is emitted by the chain indexer when funds arrive in a vault.
type VaultDepositEvent struct {
	EventType    EventType `json:"event_type"` // always 1
	TxHash       string    `json:"tx_hash"`
	VaultAddress string    `json:"vault_address"`
	Token        string    `json:"token"`
	Amount       string    `json:"amount"` // decimal string
	Depositor    string    `json:"depositor"`
	Timestamp    int64     `json:"timestamp"` // epoch ms
}

// VaultWithdrawalEvent is emitted when a withdrawal executes on-chain.
// RequestID links back to the ledger record when the withdrawal originated
// from a tracked request.
type VaultWithdrawalEvent struct {
	EventType    EventType `json:"event_type"` // always 2
	TxHash       string    `json:"tx_hash"`
	VaultAddress string    `json:"vault_address"`
	Token        string    `json:"token"`
	Amount       string    `json:"amount"` // decimal string
	Recipient    string    `json:"recipient"`
	RequestID    string    `json:"request_id,omitempty"`
	Timestamp    int64     `json:"timestamp"` // epoch ms
}

// GuardianChangeEvent is emitted when a guardian token is minted to a new guardian.
type GuardianChangeEvent struct {
	EventType            EventType `json:"event_type"` // always 3
	TxHash               string    `json:"tx_hash"`
	GuardianTokenAddress string    `json:"guardian_token_address"`
	Guardian             string    `json:"guardian"`
	Timestamp            int64     `json:"timestamp"` // epoch ms
}
