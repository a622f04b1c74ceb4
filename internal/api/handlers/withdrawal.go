package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/spendvault/custody-api-service/internal/types"
	"github.com/spendvault/custody-api-service/internal/utils"
)

var validate = validator.New()

type CreateWithdrawalRequestPayload struct {
	VaultAddress   string `json:"vault_address" validate:"required"`
	Token          string `json:"token" validate:"required"`
	Amount         string `json:"amount" validate:"required"`
	Recipient      string `json:"recipient" validate:"required"`
	Reason         string `json:"reason"`
	Nonce          string `json:"nonce" validate:"required"`
	RequiredQuorum int    `json:"required_quorum" validate:"required,gt=0"`
}

func parseCreateWithdrawalRequestPayload(request *http.Request) (*CreateWithdrawalRequestPayload, types.BigInt, types.BigInt, *types.Error) {
	payload := &CreateWithdrawalRequestPayload{}
	var zero types.BigInt
	if err := json.NewDecoder(request.Body).Decode(payload); err != nil {
		return nil, zero, zero, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if err := validate.Struct(payload); err != nil {
		return nil, zero, zero, types.NewError(http.StatusBadRequest, types.ValidationError, err)
	}
	// Validate the payload fields
	if !utils.IsValidAddress(payload.VaultAddress) {
		return nil, zero, zero, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid vault address",
		)
	}
	if !utils.IsValidAddress(payload.Token) {
		return nil, zero, zero, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid token address",
		)
	}
	if !utils.IsValidAddress(payload.Recipient) {
		return nil, zero, zero, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid recipient address",
		)
	}
	amount, err := types.NewBigIntFromString(payload.Amount)
	if err != nil {
		return nil, zero, zero, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid amount",
		)
	}
	nonce, err := types.NewBigIntFromString(payload.Nonce)
	if err != nil {
		return nil, zero, zero, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid nonce",
		)
	}

	return payload, amount, nonce, nil
}

// CreateWithdrawalRequest godoc
// @Summary Create withdrawal request
// @Description Registers a new withdrawal intent for a vault. Resubmitting the same intent overwrites the existing record.
// @Accept json
// @Produce json
// @Param payload body CreateWithdrawalRequestPayload true "Withdrawal Request Payload"
// @Success 201 {object} PublicResponse[services.WithdrawalRequestPublic] "The created withdrawal request"
// @Failure 400 {object} types.Error "Invalid request payload"
// @Router /v1/withdrawal-requests [post]
func (h *Handler) CreateWithdrawalRequest(request *http.Request) (*Result, *types.Error) {
	payload, amount, nonce, err := parseCreateWithdrawalRequestPayload(request)
	if err != nil {
		return nil, err
	}

	created, createErr := h.services.CreateWithdrawalRequest(
		request.Context(), payload.VaultAddress, payload.Token, amount,
		payload.Recipient, payload.Reason, nonce, payload.RequiredQuorum,
	)
	if createErr != nil {
		return nil, createErr
	}

	res := &PublicResponse[interface{}]{Data: created}
	return &Result{Data: res, Status: http.StatusCreated}, nil
}

// GetWithdrawalRequest godoc
// @Summary Get withdrawal request
// @Description Retrieves a withdrawal request by its id
// @Produce json
// @Param id query string true "Withdrawal Request ID"
// @Success 200 {object} PublicResponse[services.WithdrawalRequestPublic] "The withdrawal request"
// @Failure 404 {object} types.Error "Withdrawal request not found"
// @Router /v1/withdrawal-requests [get]
func (h *Handler) GetWithdrawalRequest(request *http.Request) (*Result, *types.Error) {
	id, err := parseRequestIDQuery(request, "id")
	if err != nil {
		return nil, err
	}

	withdrawalRequest, getErr := h.services.GetWithdrawalRequest(request.Context(), id)
	if getErr != nil {
		return nil, getErr
	}

	return NewResult(withdrawalRequest), nil
}

// GetPendingWithdrawalRequests godoc
// @Summary List pending withdrawal requests
// @Description Retrieves all withdrawal requests that still await signatures or execution
// @Produce json
// @Success 200 {object} PublicResponse[[]services.WithdrawalRequestPublic] "List of pending withdrawal requests"
// @Router /v1/withdrawal-requests/pending [get]
func (h *Handler) GetPendingWithdrawalRequests(request *http.Request) (*Result, *types.Error) {
	requests, err := h.services.GetPendingWithdrawalRequests(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(requests), nil
}

// GetVaultWithdrawalRequests godoc
// @Summary List withdrawal requests for a vault
// @Description Retrieves all withdrawal requests targeting a vault, matched case-insensitively
// @Produce json
// @Param vault_address query string true "Vault contract address"
// @Success 200 {object} PublicResponse[[]services.WithdrawalRequestPublic] "List of withdrawal requests"
// @Failure 400 {object} types.Error "Missing or invalid 'vault_address' query parameter"
// @Router /v1/vaults/withdrawal-requests [get]
func (h *Handler) GetVaultWithdrawalRequests(request *http.Request) (*Result, *types.Error) {
	vaultAddress := request.URL.Query().Get("vault_address")
	if vaultAddress == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "vault_address is required")
	}
	if !utils.IsValidAddress(vaultAddress) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid vault address")
	}

	requests, err := h.services.GetVaultWithdrawalRequests(request.Context(), vaultAddress)
	if err != nil {
		return nil, err
	}

	return NewResult(requests), nil
}

// DeleteWithdrawalRequest godoc
// @Summary Delete withdrawal request
// @Description Removes a withdrawal request. Deleting an unknown id is not an error.
// @Produce json
// @Param id query string true "Withdrawal Request ID"
// @Success 200 "The withdrawal request was removed"
// @Router /v1/withdrawal-requests [delete]
func (h *Handler) DeleteWithdrawalRequest(request *http.Request) (*Result, *types.Error) {
	id, err := parseRequestIDQuery(request, "id")
	if err != nil {
		return nil, err
	}

	if deleteErr := h.services.DeleteWithdrawalRequest(request.Context(), id); deleteErr != nil {
		return nil, deleteErr
	}

	return &Result{Status: http.StatusOK}, nil
}
