package services

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/db"
	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

type SignaturePublic struct {
	Signer    string `json:"signer"`
	Signature string `json:"signature"`
}

type WithdrawalPayloadPublic struct {
	Token     string       `json:"token"`
	Amount    types.BigInt `json:"amount"`
	Recipient string       `json:"recipient"`
	Reason    string       `json:"reason"`
	Nonce     types.BigInt `json:"nonce"`
}

type WithdrawalRequestPublic struct {
	ID              string                  `json:"id"`
	VaultAddress    string                  `json:"vault_address"`
	Request         WithdrawalPayloadPublic `json:"request"`
	Signatures      []SignaturePublic       `json:"signatures"`
	RequiredQuorum  int                     `json:"required_quorum"`
	Status          string                  `json:"status"`
	CreatedAt       int64                   `json:"created_at"`
	ExecutedAt      int64                   `json:"executed_at,omitempty"`
	ExecutionTxHash string                  `json:"execution_tx_hash,omitempty"`
}

func fromWithdrawalRequestDocument(d model.WithdrawalRequestDocument) WithdrawalRequestPublic {
	signatures := make([]SignaturePublic, 0, len(d.Signatures))
	for _, sig := range d.Signatures {
		signatures = append(signatures, SignaturePublic{
			Signer:    sig.Signer,
			Signature: sig.Signature,
		})
	}
	return WithdrawalRequestPublic{
		ID:           d.ID,
		VaultAddress: d.VaultAddress,
		Request: WithdrawalPayloadPublic{
			Token:     d.Request.Token,
			Amount:    d.Request.Amount,
			Recipient: d.Request.Recipient,
			Reason:    d.Request.Reason,
			Nonce:     d.Request.Nonce,
		},
		Signatures:      signatures,
		RequiredQuorum:  d.RequiredQuorum,
		Status:          d.Status.ToString(),
		CreatedAt:       d.CreatedAt,
		ExecutedAt:      d.ExecutedAt,
		ExecutionTxHash: d.ExecutionTxHash,
	}
}

// CreateWithdrawalRequest registers a new withdrawal intent for a vault. The
// record id is derived from the vault address, the vault nonce and the
// creation timestamp, so retried submissions of the same intent overwrite in
// place instead of piling up duplicates.
func (s *Services) CreateWithdrawalRequest(
	ctx context.Context, vaultAddress, token string, amount types.BigInt,
	recipient, reason string, nonce types.BigInt, requiredQuorum int,
) (*WithdrawalRequestPublic, *types.Error) {
	createdAt := time.Now().UnixMilli()
	document := &model.WithdrawalRequestDocument{
		ID:           model.BuildWithdrawalRequestID(vaultAddress, nonce, createdAt),
		VaultAddress: vaultAddress,
		Request: model.WithdrawalPayload{
			Token:     token,
			Amount:    amount,
			Recipient: recipient,
			Reason:    reason,
			Nonce:     nonce,
		},
		Signatures:     []model.GuardianSignature{},
		RequiredQuorum: requiredQuorum,
		Status:         types.Pending,
		CreatedAt:      createdAt,
	}

	if err := s.DbClient.SaveWithdrawalRequest(ctx, document); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to save withdrawal request")
		return nil, types.NewInternalServiceError(err)
	}

	public := fromWithdrawalRequestDocument(*document)
	return &public, nil
}

// GetWithdrawalRequest returns a single request by id.
func (s *Services) GetWithdrawalRequest(ctx context.Context, id string) (*WithdrawalRequestPublic, *types.Error) {
	document, err := s.DbClient.FindWithdrawalRequestByID(ctx, id)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "withdrawal request not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("error while fetching withdrawal request")
		return nil, types.NewInternalServiceError(err)
	}
	public := fromWithdrawalRequestDocument(*document)
	return &public, nil
}

// GetPendingWithdrawalRequests returns every request that still awaits
// guardian signatures or execution.
func (s *Services) GetPendingWithdrawalRequests(ctx context.Context) ([]WithdrawalRequestPublic, *types.Error) {
	documents, err := s.DbClient.FindPendingWithdrawalRequests(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find pending withdrawal requests")
		return nil, types.NewInternalServiceError(err)
	}
	return toPublicRequests(documents), nil
}

// GetVaultWithdrawalRequests returns all requests targeting a vault. The
// address match is case-insensitive.
func (s *Services) GetVaultWithdrawalRequests(ctx context.Context, vaultAddress string) ([]WithdrawalRequestPublic, *types.Error) {
	documents, err := s.DbClient.FindWithdrawalRequestsByVault(ctx, vaultAddress)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find withdrawal requests by vault")
		return nil, types.NewInternalServiceError(err)
	}
	return toPublicRequests(documents), nil
}

// DeleteWithdrawalRequest removes a request. Unknown ids are a no-op.
func (s *Services) DeleteWithdrawalRequest(ctx context.Context, id string) *types.Error {
	if err := s.DbClient.DeleteWithdrawalRequest(ctx, id); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete withdrawal request")
		return types.NewInternalServiceError(err)
	}
	return nil
}

// CleanupExpiredRequests prunes terminal requests older than the configured
// max age. It returns the number of removed records.
func (s *Services) CleanupExpiredRequests(ctx context.Context) (int64, *types.Error) {
	cutoff := time.Now().Add(-s.cfg.Cleanup.MaxAge).UnixMilli()
	removed, err := s.DbClient.CleanupTerminalRequests(ctx, cutoff)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to cleanup terminal withdrawal requests")
		return 0, types.NewInternalServiceError(err)
	}
	if removed > 0 {
		log.Ctx(ctx).Info().Int64("removed", removed).Msg("pruned terminal withdrawal requests")
	}
	return removed, nil
}

func toPublicRequests(documents []model.WithdrawalRequestDocument) []WithdrawalRequestPublic {
	requests := make([]WithdrawalRequestPublic, 0, len(documents))
	for _, d := range documents {
		requests = append(requests, fromWithdrawalRequestDocument(d))
	}
	return requests
}
