package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/spendvault/custody-api-service/internal/types"
	"github.com/spendvault/custody-api-service/internal/utils"
)

type AddSignaturePayload struct {
	RequestID string `json:"request_id" validate:"required"`
	Signer    string `json:"signer" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

func parseAddSignaturePayload(request *http.Request) (*AddSignaturePayload, *types.Error) {
	payload := &AddSignaturePayload{}
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if err := validate.Struct(payload); err != nil {
		return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}
	if !utils.IsValidAddress(payload.Signer) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid signer address",
		)
	}
	if !utils.IsValidSignatureFormat(payload.Signature) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid signature hex",
		)
	}
	return payload, nil
}

type ExecuteWithdrawalPayload struct {
	RequestID string `json:"request_id" validate:"required"`
	TxHash    string `json:"tx_hash" validate:"required"`
}

type RejectWithdrawalPayload struct {
	RequestID string `json:"request_id" validate:"required"`
}

// AddSignature godoc
// @Summary Add guardian signature
// @Description Appends a guardian signature to a withdrawal request. The request becomes approved once the quorum is reached.
// @Accept json
// @Produce json
// @Param payload body AddSignaturePayload true "Signature Payload"
// @Success 200 {object} PublicResponse[services.WithdrawalRequestPublic] "The updated withdrawal request"
// @Failure 404 {object} types.Error "Withdrawal request not found"
// @Failure 409 {object} types.Error "Guardian has already signed this request"
// @Router /v1/withdrawal-requests/signatures [post]
func (h *Handler) AddSignature(request *http.Request) (*Result, *types.Error) {
	payload, err := parseAddSignaturePayload(request)
	if err != nil {
		return nil, err
	}

	updated, addErr := h.services.AddSignature(
		request.Context(), payload.RequestID, payload.Signer, payload.Signature,
	)
	if addErr != nil {
		return nil, addErr
	}

	return NewResult(updated), nil
}

// GetSignatureStatus godoc
// @Summary Get signature status
// @Description Reports how many guardian signatures a withdrawal request has collected against its quorum
// @Produce json
// @Param id query string true "Withdrawal Request ID"
// @Success 200 {object} PublicResponse[services.SignatureStatusPublic] "Signature status"
// @Failure 404 {object} types.Error "Withdrawal request not found"
// @Router /v1/withdrawal-requests/signature-status [get]
func (h *Handler) GetSignatureStatus(request *http.Request) (*Result, *types.Error) {
	id, err := parseRequestIDQuery(request, "id")
	if err != nil {
		return nil, err
	}

	status, statusErr := h.services.GetSignatureStatus(request.Context(), id)
	if statusErr != nil {
		return nil, statusErr
	}

	return NewResult(status), nil
}

// ExecuteWithdrawalRequest godoc
// @Summary Mark withdrawal request executed
// @Description Records the on-chain execution transaction of an approved withdrawal request
// @Accept json
// @Produce json
// @Param payload body ExecuteWithdrawalPayload true "Execution Payload"
// @Success 200 "The withdrawal request was marked executed"
// @Failure 403 {object} types.Error "Request not found or not approved"
// @Router /v1/withdrawal-requests/execute [post]
func (h *Handler) ExecuteWithdrawalRequest(request *http.Request) (*Result, *types.Error) {
	payload := &ExecuteWithdrawalPayload{}
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if err := validate.Struct(payload); err != nil {
		return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}
	if !utils.IsValidTxHash(payload.TxHash) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid transaction hash")
	}

	if execErr := h.services.MarkExecuted(request.Context(), payload.RequestID, payload.TxHash); execErr != nil {
		return nil, execErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// RejectWithdrawalRequest godoc
// @Summary Reject withdrawal request
// @Description Rejects a withdrawal request that has not been executed yet
// @Accept json
// @Produce json
// @Param payload body RejectWithdrawalPayload true "Rejection Payload"
// @Success 200 "The withdrawal request was rejected"
// @Failure 403 {object} types.Error "Request not found or already executed"
// @Router /v1/withdrawal-requests/reject [post]
func (h *Handler) RejectWithdrawalRequest(request *http.Request) (*Result, *types.Error) {
	payload := &RejectWithdrawalPayload{}
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if err := validate.Struct(payload); err != nil {
		return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}

	if rejectErr := h.services.MarkRejected(request.Context(), payload.RequestID); rejectErr != nil {
		return nil, rejectErr
	}

	return &Result{Status: http.StatusOK}, nil
}
