package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

// AdoptLedger godoc
// @Summary Adopt a migrated ledger
// @Description Accepts a full withdrawal-request ledger exported from a client and upserts it into the server store
// @Accept json
// @Produce json
// @Param payload body []model.WithdrawalRequestDocument true "Exported ledger"
// @Success 200 {object} PublicResponse[services.MigrationResultPublic] "Adoption result"
// @Failure 400 {object} types.Error "Invalid ledger payload"
// @Router /v1/migrations/ledger [post]
func (h *Handler) AdoptLedger(request *http.Request) (*Result, *types.Error) {
	var requests []model.WithdrawalRequestDocument
	if err := json.NewDecoder(request.Body).Decode(&requests); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid ledger payload")
	}

	result, adoptErr := h.services.AdoptLedger(request.Context(), requests)
	if adoptErr != nil {
		return nil, adoptErr
	}

	return NewResult(result), nil
}

// AdoptActivity godoc
// @Summary Adopt migrated chain activity
// @Description Accepts a batch of cached on-chain activity records and upserts them into the server store
// @Accept json
// @Produce json
// @Param payload body []model.ActivityDocument true "Activity batch"
// @Success 200 {object} PublicResponse[services.MigrationResultPublic] "Adoption result"
// @Failure 400 {object} types.Error "Invalid activity payload"
// @Router /v1/migrations/activity [post]
func (h *Handler) AdoptActivity(request *http.Request) (*Result, *types.Error) {
	var activities []model.ActivityDocument
	if err := json.NewDecoder(request.Body).Decode(&activities); err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid activity payload")
	}

	result, adoptErr := h.services.AdoptActivity(request.Context(), activities)
	if adoptErr != nil {
		return nil, adoptErr
	}

	return NewResult(result), nil
}
