package model

import (
	"github.com/spendvault/custody-api-service/internal/types"
)

const ActivityCollection = "vault_activities"

// ActivityDocument is the uniform shape for cached on-chain activity
// (deposits, withdrawals, guardian changes) mirrored from the chain indexer.
type ActivityDocument struct {
	ID        string             `bson:"_id" json:"id"`
	Account   string             `bson:"account" json:"account"`
	Type      types.ActivityType `bson:"type" json:"type"`
	Details   string             `bson:"details" json:"details"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"` // epoch ms
}
