package model

import (
	"fmt"

	"github.com/spendvault/custody-api-service/internal/types"
	"github.com/spendvault/custody-api-service/internal/utils"
)

const WithdrawalRequestCollection = "withdrawal_requests"

// GuardianSignature is a single guardian's approval of a withdrawal request.
// Signer addresses are stored lowercase; at most one signature per signer is
// allowed within a request.
type GuardianSignature struct {
	Signer    string `bson:"signer" json:"signer"`
	Signature string `bson:"signature" json:"signature"`
}

// WithdrawalPayload is the withdrawal intent as it will be submitted to the
// vault contract. Amount and nonce are arbitrary-precision and persist as
// decimal strings.
type WithdrawalPayload struct {
	Token     string       `bson:"token" json:"token"`
	Amount    types.BigInt `bson:"amount" json:"amount"`
	Recipient string       `bson:"recipient" json:"recipient"`
	Reason    string       `bson:"reason" json:"reason"`
	Nonce     types.BigInt `bson:"nonce" json:"nonce"`
}

type WithdrawalRequestDocument struct {
	ID              string                 `bson:"_id" json:"id"` // Primary key
	VaultAddress    string                 `bson:"vault_address" json:"vault_address"`
	Request         WithdrawalPayload      `bson:"request" json:"request"`
	Signatures      []GuardianSignature    `bson:"signatures" json:"signatures"`
	RequiredQuorum  int                    `bson:"required_quorum" json:"required_quorum"`
	Status          types.WithdrawalStatus `bson:"status" json:"status"`
	CreatedAt       int64                  `bson:"created_at" json:"created_at"` // epoch ms
	ExecutedAt      int64                  `bson:"executed_at,omitempty" json:"executed_at,omitempty"`
	ExecutionTxHash string                 `bson:"execution_tx_hash,omitempty" json:"execution_tx_hash,omitempty"`
}

// HasSigner reports whether the request already carries a signature from the
// given signer. The comparison is case-insensitive.
func (d *WithdrawalRequestDocument) HasSigner(signer string) bool {
	normalized := utils.NormalizeAddress(signer)
	for _, sig := range d.Signatures {
		if utils.NormalizeAddress(sig.Signer) == normalized {
			return true
		}
	}
	return false
}

// BuildWithdrawalRequestID derives the record id from the vault address, the
// per-vault nonce and the creation timestamp. The same inputs always produce
// the same id, which makes request creation idempotent.
func BuildWithdrawalRequestID(vaultAddress string, nonce types.BigInt, createdAt int64) string {
	return fmt.Sprintf("%s-%s-%d", utils.NormalizeAddress(vaultAddress), nonce.String(), createdAt)
}
