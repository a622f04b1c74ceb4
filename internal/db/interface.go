package db

import (
	"context"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

// DBClient is the storage contract for the withdrawal-request ledger and the
// cached on-chain activity. It is injected into the service layer so that
// tests can substitute the in-memory implementation.
type DBClient interface {
	Ping(ctx context.Context) error
	// SaveWithdrawalRequest inserts the request, or fully replaces it when the
	// id already exists. Upsert semantics make creation retries idempotent.
	SaveWithdrawalRequest(ctx context.Context, request *model.WithdrawalRequestDocument) error
	FindWithdrawalRequestByID(ctx context.Context, id string) (*model.WithdrawalRequestDocument, error)
	FindWithdrawalRequestsByVault(ctx context.Context, vaultAddress string) ([]model.WithdrawalRequestDocument, error)
	FindPendingWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequestDocument, error)
	FindAllWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequestDocument, error)
	DeleteWithdrawalRequest(ctx context.Context, id string) error
	// AddSignature atomically appends a guardian signature and promotes the
	// request to approved once the signature count reaches the stored quorum.
	AddSignature(ctx context.Context, id string, signature model.GuardianSignature) (*model.WithdrawalRequestDocument, error)
	TransitionToExecutedState(ctx context.Context, id, txHash string, executedAt int64) error
	TransitionToRejectedState(ctx context.Context, id string) error
	// CleanupTerminalRequests removes executed/rejected requests created
	// strictly before the cutoff. Non-terminal requests are never removed.
	CleanupTerminalRequests(ctx context.Context, cutoff int64) (int64, error)
	SaveActivity(ctx context.Context, activity *model.ActivityDocument) error
	SaveActivities(ctx context.Context, activities []model.ActivityDocument) error
	FindActivitiesByAccount(ctx context.Context, account string, activityType *types.ActivityType) ([]model.ActivityDocument, error)
	SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error
	FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error)
	DeleteUnprocessableMessage(ctx context.Context, receipt string) error
}
