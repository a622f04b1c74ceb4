package handlers

import (
	"net/http"

	"github.com/spendvault/custody-api-service/internal/types"
	"github.com/spendvault/custody-api-service/internal/utils"
)

// GetVaultActivity godoc
// @Summary Get vault activity
// @Description Retrieves the cached on-chain activity feed for an account, newest first
// @Produce json
// @Param account query string true "Vault or guardian token address"
// @Param type query string false "Filter by activity type" Enums(deposit, withdrawal, guardian_added)
// @Success 200 {object} PublicResponse[[]services.ActivityPublic] "Activity feed"
// @Failure 400 {object} types.Error "Missing or invalid query parameters"
// @Router /v1/vaults/activity [get]
func (h *Handler) GetVaultActivity(request *http.Request) (*Result, *types.Error) {
	account := request.URL.Query().Get("account")
	if account == "" {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "account is required")
	}
	if !utils.IsValidAddress(account) {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid account address")
	}

	var activityType *types.ActivityType
	if rawType := request.URL.Query().Get("type"); rawType != "" {
		parsed, err := types.FromStringToActivityType(rawType)
		if err != nil {
			return nil, types.NewError(http.StatusBadRequest, types.BadRequest, err)
		}
		activityType = &parsed
	}

	activities, err := h.services.GetVaultActivity(request.Context(), account, activityType)
	if err != nil {
		return nil, err
	}

	return NewResult(activities), nil
}
