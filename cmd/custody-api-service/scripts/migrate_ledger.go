package scripts

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/services"
)

// MigrateLedger pushes the entire withdrawal-request ledger to the configured
// remote adoption endpoint and reports the outcome on stdout.
func MigrateLedger(ctx context.Context, service *services.Services) error {
	result, err := service.MigrateLedgerToServer(ctx)
	if err != nil {
		return fmt.Errorf("ledger migration failed: %w", err)
	}

	fmt.Printf("Migrated %d withdrawal requests.\n", result.Migrated)
	log.Info().Int("migrated", result.Migrated).Msg("Ledger migration completed.")
	return nil
}

// MigrateActivity pushes the cached chain activity for a vault, and optionally
// its guardian token, to the remote adoption endpoint.
func MigrateActivity(ctx context.Context, service *services.Services, vaultAddress, guardianTokenAddress string) error {
	result, err := service.MigrateChainActivity(ctx, vaultAddress, guardianTokenAddress)
	if err != nil {
		return fmt.Errorf("activity migration failed: %w", err)
	}

	fmt.Printf("Migrated %d activity records.\n", result.Migrated)
	log.Info().Int("migrated", result.Migrated).Msg("Activity migration completed.")
	return nil
}
