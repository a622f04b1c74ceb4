package scripts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/db"
	"github.com/spendvault/custody-api-service/internal/queue"
	"github.com/spendvault/custody-api-service/internal/queue/client"
)

type GenericEvent struct {
	EventType client.EventType `json:"event_type"`
}

func ReplayUnprocessableMessages(ctx context.Context, cfg *config.Config, queues *queue.Queues, dbClient db.DBClient) (err error) {
	// Fetch unprocessable messages
	unprocessableMessages, err := dbClient.FindUnprocessableMessages(ctx)
	if err != nil {
		return errors.New("failed to retrieve unprocessable messages")
	}

	// Get the message count
	messageCount := len(unprocessableMessages)

	// Inform the user of the number of unprocessable messages
	fmt.Printf("There are %d unprocessable messages.\n", messageCount)
	if messageCount == 0 {
		return errors.New("no unprocessable messages to replay")
	}

	// Process each unprocessable message
	for _, msg := range unprocessableMessages {
		var genericEvent GenericEvent
		if err := json.Unmarshal([]byte(msg.MessageBody), &genericEvent); err != nil {
			fmt.Printf("Failed to unmarshal event message: %v", err)
			return errors.New("failed to unmarshal event message")
		}

		// Process the event message
		if err := processEventMessage(ctx, queues, genericEvent, msg.MessageBody); err != nil {
			return errors.New("failed to process message")
		}

		// Delete the processed message from the database
		if err := dbClient.DeleteUnprocessableMessage(ctx, msg.Receipt); err != nil {
			return errors.New("failed to delete unprocessable message")
		}
	}

	log.Info().Msg("Reprocessing of unprocessable messages completed.")
	return
}

// processEventMessage processes the event message based on its EventType.
func processEventMessage(ctx context.Context, queues *queue.Queues, event GenericEvent, messageBody string) error {
	switch event.EventType {
	case client.DepositEventType:
		return queues.DepositQueueClient.SendMessage(ctx, messageBody)
	case client.WithdrawalEventType:
		return queues.WithdrawalQueueClient.SendMessage(ctx, messageBody)
	case client.GuardianEventType:
		return queues.GuardianQueueClient.SendMessage(ctx, messageBody)
	default:
		return fmt.Errorf("unknown event type: %v", event.EventType)
	}
}
