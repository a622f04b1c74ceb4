package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	queueClient "github.com/spendvault/custody-api-service/internal/queue/client"
	"github.com/spendvault/custody-api-service/internal/types"
)

func (h *QueueHandler) GuardianChangeHandler(ctx context.Context, messageBody string) *types.Error {
	var guardianEvent queueClient.GuardianChangeEvent
	err := json.Unmarshal([]byte(messageBody), &guardianEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into GuardianChangeEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}

	details := fmt.Sprintf("guardian %s added", guardianEvent.Guardian)
	return h.Services.SaveActivityRecord(
		ctx, guardianEvent.TxHash, guardianEvent.GuardianTokenAddress,
		types.GuardianAddedActivity, details, guardianEvent.Timestamp,
	)
}
