package cleanup

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/observability/metrics"
	"github.com/spendvault/custody-api-service/internal/services"
)

// StartCleanupCron periodically prunes terminal withdrawal requests that have
// outlived the configured retention. Pending and approved requests are never
// touched, only executed and rejected ones.
func StartCleanupCron(ctx context.Context, service *services.Services, intervalSeconds int) error {
	c := cron.New()
	log.Info().Msg("Initiated Ledger Cleanup Cron")

	cronSpec := fmt.Sprintf("@every %ds", intervalSeconds)

	_, err := c.AddFunc(cronSpec, func() {
		runCleanupPass(ctx, service)
	})
	if err != nil {
		return err
	}

	c.Start()

	go func() {
		<-ctx.Done()
		log.Info().Msg("Stopping Ledger Cleanup Cron")
		c.Stop()
	}()

	return nil
}

func runCleanupPass(ctx context.Context, service *services.Services) {
	removed, err := service.CleanupExpiredRequests(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ledger cleanup pass failed")
		return
	}
	metrics.RecordPrunedRequests(removed)
}
