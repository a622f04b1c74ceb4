package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/observability/metrics"
	"github.com/spendvault/custody-api-service/internal/queue/client"
	"github.com/spendvault/custody-api-service/internal/queue/handlers"
	"github.com/spendvault/custody-api-service/internal/services"
)

type Queues struct {
	DepositQueueClient    client.QueueClient
	WithdrawalQueueClient client.QueueClient
	GuardianQueueClient   client.QueueClient
	Handlers              *handlers.QueueHandler
	processingTimeout     time.Duration
}

func New(cfg *config.QueueConfig, service *services.Services) *Queues {
	depositQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.User, cfg.Password, cfg.DepositQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating DepositQueueClient")
	}
	withdrawalQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.User, cfg.Password, cfg.WithdrawalQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating WithdrawalQueueClient")
	}
	guardianQueueClient, err := client.NewQueueClient(
		cfg.Url, cfg.User, cfg.Password, cfg.GuardianQueueName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating GuardianQueueClient")
	}

	handlers := handlers.NewQueueHandler(service)
	return &Queues{
		DepositQueueClient:    depositQueueClient,
		WithdrawalQueueClient: withdrawalQueueClient,
		GuardianQueueClient:   guardianQueueClient,
		Handlers:              handlers,
		processingTimeout:     time.Duration(cfg.QueueProcessingTimeout) * time.Second,
	}
}

// Start all message processing
func (q *Queues) StartReceivingMessages() {
	startQueueMessageProcessing(q, q.DepositQueueClient, q.Handlers.DepositHandler, log.Logger, q.processingTimeout)
	startQueueMessageProcessing(q, q.WithdrawalQueueClient, q.Handlers.WithdrawalHandler, log.Logger, q.processingTimeout)
	startQueueMessageProcessing(q, q.GuardianQueueClient, q.Handlers.GuardianChangeHandler, log.Logger, q.processingTimeout)
}

// Turn off all message processing
func (q *Queues) StopReceivingMessages() {
	if err := q.DepositQueueClient.Stop(); err != nil {
		log.Error().Err(err).Str("queueName", q.DepositQueueClient.GetQueueName()).Msg("error while stopping queue client")
	}
	if err := q.WithdrawalQueueClient.Stop(); err != nil {
		log.Error().Err(err).Str("queueName", q.WithdrawalQueueClient.GetQueueName()).Msg("error while stopping queue client")
	}
	if err := q.GuardianQueueClient.Stop(); err != nil {
		log.Error().Err(err).Str("queueName", q.GuardianQueueClient.GetQueueName()).Msg("error while stopping queue client")
	}
}

// IsConnectionHealthy pings every queue connection.
func (q *Queues) IsConnectionHealthy() error {
	if err := q.DepositQueueClient.Ping(); err != nil {
		return err
	}
	if err := q.WithdrawalQueueClient.Ping(); err != nil {
		return err
	}
	return q.GuardianQueueClient.Ping()
}

func startQueueMessageProcessing(
	queues *Queues, queueClient client.QueueClient, handler handlers.MessageHandler,
	logger zerolog.Logger, timeout time.Duration,
) {
	messagesChan, err := queueClient.ReceiveMessages()
	if err != nil {
		logger.Fatal().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error setting up message channel from queue")
	}

	go func() {
		for message := range messagesChan {
			// For each message, create a new context with a deadline or timeout
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			err := handler(ctx, message.Body)
			if err != nil {
				logger.Error().Err(err).Str("queueName", queueClient.GetQueueName()).Msg("error while processing message from queue")
				metrics.RecordQueueMessage(queueClient.GetQueueName(), metrics.Error)
				// Park the message for manual replay instead of redelivering it forever.
				if saveErr := queues.Handlers.Services.SaveUnprocessableMessages(ctx, message.Body, message.Receipt); saveErr != nil {
					logger.Error().Err(saveErr).Str("queueName", queueClient.GetQueueName()).Msg("error while saving unprocessable message")
					cancel()
					continue
				}
			} else {
				metrics.RecordQueueMessage(queueClient.GetQueueName(), metrics.Success)
			}

			delErr := queueClient.DeleteMessage(message.Receipt)
			if delErr != nil {
				logger.Error().Err(delErr).Str("queueName", queueClient.GetQueueName()).Msg("error while deleting message from queue")
			}
			cancel()
		}
	}()
}
