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

func (h *QueueHandler) WithdrawalHandler(ctx context.Context, messageBody string) *types.Error {
	var withdrawalEvent queueClient.VaultWithdrawalEvent
	err := json.Unmarshal([]byte(messageBody), &withdrawalEvent)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to unmarshal the message body into VaultWithdrawalEvent")
		return types.NewError(http.StatusBadRequest, types.BadRequest, err)
	}

	details := fmt.Sprintf(
		"withdrawal of %s %s to %s", withdrawalEvent.Amount, withdrawalEvent.Token, withdrawalEvent.Recipient,
	)
	saveErr := h.Services.SaveActivityRecord(
		ctx, withdrawalEvent.TxHash, withdrawalEvent.VaultAddress,
		types.WithdrawalActivity, details, withdrawalEvent.Timestamp,
	)
	if saveErr != nil {
		return saveErr
	}

	// When the withdrawal originated from a tracked ledger request, record the
	// execution against it. A request that is missing or was never approved is
	// out of this service's hands, the event itself is still processed.
	if withdrawalEvent.RequestID != "" {
		if execErr := h.Services.MarkExecuted(ctx, withdrawalEvent.RequestID, withdrawalEvent.TxHash); execErr != nil {
			if execErr.ErrorCode == types.NotFound {
				log.Ctx(ctx).Debug().
					Str("requestID", withdrawalEvent.RequestID).
					Msg("withdrawal event references an unknown or non-approved ledger request")
			} else {
				return execErr
			}
		}
	}

	return nil
}
