package services

import (
	"context"
	"time"

	"github.com/spendvault/custody-api-service/internal/clients"
	"github.com/spendvault/custody-api-service/internal/clients/migration"
	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/db"
	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

func testConfig() *config.Config {
	return &config.Config{
		Cleanup: config.CleanupConfig{
			Interval: 60,
			MaxAge:   30 * 24 * time.Hour,
		},
	}
}

func newTestServices(dbClient db.DBClient, migrationClient migration.MigrationClient) *Services {
	return NewWithClient(testConfig(), dbClient, &clients.Clients{Migration: migrationClient})
}

// recordingMigrationClient captures outbound adoption batches so tests can
// assert on what would hit the wire without a running server.
type recordingMigrationClient struct {
	ledgerCalls   int
	activityCalls int
	lastLedger    []model.WithdrawalRequestDocument
	lastActivity  []model.ActivityDocument
	failWith      *types.Error
}

func (c *recordingMigrationClient) PostLedger(
	ctx context.Context, requests []model.WithdrawalRequestDocument,
) (*migration.AdoptionResponse, *types.Error) {
	c.ledgerCalls++
	c.lastLedger = requests
	if c.failWith != nil {
		return nil, c.failWith
	}
	return &migration.AdoptionResponse{Ok: true, Migrated: len(requests)}, nil
}

func (c *recordingMigrationClient) PostActivity(
	ctx context.Context, activities []model.ActivityDocument,
) (*migration.AdoptionResponse, *types.Error) {
	c.activityCalls++
	c.lastActivity = activities
	if c.failWith != nil {
		return nil, c.failWith
	}
	return &migration.AdoptionResponse{Ok: true, Migrated: len(activities)}, nil
}
