package clients

import (
	"github.com/spendvault/custody-api-service/internal/clients/migration"
	"github.com/spendvault/custody-api-service/internal/config"
)

type Clients struct {
	Migration migration.MigrationClient
}

func New(cfg *config.Config) *Clients {
	migrationClient := migration.NewClient(&cfg.Migration)

	return &Clients{
		Migration: migrationClient,
	}
}
