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

type SignatureStatusPublic struct {
	RequestID      string   `json:"request_id"`
	Collected      int      `json:"collected"`
	RequiredQuorum int      `json:"required_quorum"`
	Approved       bool     `json:"approved"`
	Signers        []string `json:"signers"`
	Status         string   `json:"status"`
}

// AddSignature appends a guardian signature to a withdrawal request and
// promotes it to approved once the collected signatures reach the stored
// quorum. Each guardian may sign a request at most once.
func (s *Services) AddSignature(
	ctx context.Context, requestID, signer, signatureHex string,
) (*WithdrawalRequestPublic, *types.Error) {
	signature := model.GuardianSignature{
		Signer:    signer,
		Signature: signatureHex,
	}
	document, err := s.DbClient.AddSignature(ctx, requestID, signature)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Str("requestID", requestID).Err(err).Msg("withdrawal request not found for signature")
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "withdrawal request not found")
		}
		if ok := db.IsDuplicateSignerError(err); ok {
			log.Ctx(ctx).Warn().Str("requestID", requestID).Str("signer", signer).Err(err).Msg("guardian has already signed")
			return nil, types.NewError(http.StatusConflict, types.DuplicateSigner, err)
		}
		log.Ctx(ctx).Error().Str("requestID", requestID).Err(err).Msg("failed to add signature")
		return nil, types.NewInternalServiceError(err)
	}

	public := fromWithdrawalRequestDocument(*document)
	return &public, nil
}

// GetSignatureStatus reports how far a request is from quorum.
func (s *Services) GetSignatureStatus(ctx context.Context, requestID string) (*SignatureStatusPublic, *types.Error) {
	document, err := s.DbClient.FindWithdrawalRequestByID(ctx, requestID)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, "withdrawal request not found")
		}
		log.Ctx(ctx).Error().Str("requestID", requestID).Err(err).Msg("error while fetching withdrawal request")
		return nil, types.NewInternalServiceError(err)
	}

	signers := make([]string, 0, len(document.Signatures))
	for _, sig := range document.Signatures {
		signers = append(signers, sig.Signer)
	}
	return &SignatureStatusPublic{
		RequestID:      document.ID,
		Collected:      len(document.Signatures),
		RequiredQuorum: document.RequiredQuorum,
		Approved:       len(document.Signatures) >= document.RequiredQuorum,
		Signers:        signers,
		Status:         document.Status.ToString(),
	}, nil
}

// MarkExecuted records the on-chain execution of an approved request.
// Requests that never collected quorum cannot be marked executed.
func (s *Services) MarkExecuted(ctx context.Context, requestID, txHash string) *types.Error {
	err := s.DbClient.TransitionToExecutedState(ctx, requestID, txHash, time.Now().UnixMilli())
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Str("requestID", requestID).Err(err).Msg("withdrawal request not found or not approved for execution")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "withdrawal request not found or not approved for execution")
		}
		log.Ctx(ctx).Error().Str("requestID", requestID).Err(err).Msg("failed to transition to executed status")
		return types.NewInternalServiceError(err)
	}
	return nil
}

// MarkRejected rejects a request that has not been executed yet.
func (s *Services) MarkRejected(ctx context.Context, requestID string) *types.Error {
	err := s.DbClient.TransitionToRejectedState(ctx, requestID)
	if err != nil {
		if ok := db.IsNotFoundError(err); ok {
			log.Ctx(ctx).Warn().Str("requestID", requestID).Err(err).Msg("withdrawal request not found or no longer eligible for rejection")
			return types.NewErrorWithMsg(http.StatusForbidden, types.NotFound, "withdrawal request not found or no longer eligible for rejection")
		}
		log.Ctx(ctx).Error().Str("requestID", requestID).Err(err).Msg("failed to transition to rejected status")
		return types.NewInternalServiceError(err)
	}
	return nil
}
