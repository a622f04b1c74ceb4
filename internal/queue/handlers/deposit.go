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

func (h *QueueHandler) DepositHandler(ctx context.Context, messageBody string) *types.Error {
	var depositEvent queueClient.VaultDepositEvent
	err := json.Unmarshal([]byte(messageBody), &depositEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into VaultDepositEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}

	details := fmt.Sprintf(
		"deposit of %s %s by %s", depositEvent.Amount, depositEvent.Token, depositEvent.Depositor,
	)
	return h.Services.SaveActivityRecord(
		ctx, depositEvent.TxHash, depositEvent.VaultAddress,
		types.DepositActivity, details, depositEvent.Timestamp,
	)
}
