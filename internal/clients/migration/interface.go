package migration

import (
	"context"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

// AdoptionResponse is what the remote adoption endpoint returns for a batch.
type AdoptionResponse struct {
	Ok       bool `json:"ok"`
	Migrated int  `json:"migrated"`
}

type MigrationClient interface {
	// PostLedger transfers a full withdrawal-request ledger to the remote
	// server for durable adoption.
	PostLedger(ctx context.Context, requests []model.WithdrawalRequestDocument) (*AdoptionResponse, *types.Error)
	// PostActivity transfers a batch of cached on-chain activity records.
	PostActivity(ctx context.Context, activities []model.ActivityDocument) (*AdoptionResponse, *types.Error)
}
