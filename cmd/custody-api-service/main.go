package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/cmd/custody-api-service/cli"
	"github.com/spendvault/custody-api-service/cmd/custody-api-service/scripts"
	"github.com/spendvault/custody-api-service/internal/api"
	"github.com/spendvault/custody-api-service/internal/cleanup"
	"github.com/spendvault/custody-api-service/internal/clients"
	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/observability/healthcheck"
	"github.com/spendvault/custody-api-service/internal/observability/metrics"
	"github.com/spendvault/custody-api-service/internal/queue"
	"github.com/spendvault/custody-api-service/internal/services"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
}

func main() {
	ctx := context.Background()

	// setup cli commands and flags
	if err := cli.Setup(); err != nil {
		log.Fatal().Err(err).Msg("error while setting up cli")
	}

	// load config
	cfgPath := cli.GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	err = model.Setup(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up custody db model")
	}
	serviceClients := clients.New(cfg)
	services, err := services.New(ctx, cfg, serviceClients)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up custody services layer")
	}

	// One-shot migration commands exit before the server starts.
	if cli.GetMigrateLedgerFlag() {
		log.Info().Msg("Migrate-ledger flag is set. Starting ledger migration.")
		if err := scripts.MigrateLedger(ctx, services); err != nil {
			log.Fatal().Err(err).Msg("error while migrating ledger")
		}
		return
	}
	if vault := cli.GetMigrateActivityVault(); vault != "" {
		log.Info().Msg("Migrate-activity flag is set. Starting activity migration.")
		if err := scripts.MigrateActivity(ctx, services, vault, cli.GetMigrateGuardianToken()); err != nil {
			log.Fatal().Err(err).Msg("error while migrating activity")
		}
		return
	}

	// Start the event queue processing
	queues := queue.New(&cfg.Queue, services)

	// Check if the replay flag is set
	if cli.GetReplayFlag() {
		log.Info().Msg("Replay flag is set. Starting replay of unprocessable messages.")
		err := scripts.ReplayUnprocessableMessages(ctx, cfg, queues, services.DbClient)
		if err != nil {
			log.Fatal().Err(err).Msg("error while replaying unprocessable messages")
		}
		return
	}

	queues.StartReceivingMessages()

	if err := healthcheck.StartHealthCheckCron(ctx, queues, cfg.Queue.HealthCheckInterval); err != nil {
		log.Fatal().Err(err).Msg("error while starting health check cron")
	}

	if err := cleanup.StartCleanupCron(ctx, services, cfg.Cleanup.Interval); err != nil {
		log.Fatal().Err(err).Msg("error while starting ledger cleanup cron")
	}

	apiServer, err := api.New(ctx, cfg, services)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up custody api service")
	}
	if err = apiServer.Start(); err != nil {
		log.Fatal().Err(err).Msg("error while starting custody api service")
	}
}
