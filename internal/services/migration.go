package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

type MigrationResultPublic struct {
	Ok       bool `json:"ok"`
	Migrated int  `json:"migrated"`
}

// ExportLedger serializes the full withdrawal-request ledger as pretty-printed
// JSON. Amounts and nonces appear as decimal strings and survive a
// parse-and-repost cycle without precision loss.
func (s *Services) ExportLedger(ctx context.Context) (string, *types.Error) {
	documents, err := s.DbClient.FindAllWithdrawalRequests(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to load ledger for export")
		return "", types.NewInternalServiceError(err)
	}
	if documents == nil {
		documents = []model.WithdrawalRequestDocument{}
	}

	exported, marshalErr := json.MarshalIndent(documents, "", "  ")
	if marshalErr != nil {
		log.Ctx(ctx).Error().Err(marshalErr).Msg("failed to serialize ledger")
		return "", types.NewInternalServiceError(marshalErr)
	}
	return string(exported), nil
}

// MigrateLedgerToServer exports the ledger, re-parses the export and posts it
// to the configured remote adoption endpoint. A non-success response surfaces
// as MIGRATION_FAILED carrying the remote status code; nothing is retried.
func (s *Services) MigrateLedgerToServer(ctx context.Context) (*MigrationResultPublic, *types.Error) {
	exported, err := s.ExportLedger(ctx)
	if err != nil {
		return nil, err
	}

	var requests []model.WithdrawalRequestDocument
	if unmarshalErr := json.Unmarshal([]byte(exported), &requests); unmarshalErr != nil {
		log.Ctx(ctx).Error().Err(unmarshalErr).Msg("exported ledger failed to parse")
		return nil, types.NewInternalServiceError(unmarshalErr)
	}

	response, postErr := s.Clients.Migration.PostLedger(ctx, requests)
	if postErr != nil {
		log.Ctx(ctx).Error().Err(postErr).Msg("ledger migration request failed")
		return nil, types.NewError(postErr.StatusCode, types.MigrationFailed, postErr)
	}

	log.Ctx(ctx).Info().Int("requests", len(requests)).Msg("ledger migrated to server")
	return &MigrationResultPublic{Ok: response.Ok, Migrated: len(requests)}, nil
}

// MigrateChainActivity gathers the cached deposit, withdrawal and guardian
// activity for a vault and posts the combined batch to the remote adoption
// endpoint. A namespace that cannot be read is skipped with a warning rather
// than failing the whole migration. When there is nothing to send, no network
// call is made and a zero-migrated sentinel is returned.
func (s *Services) MigrateChainActivity(
	ctx context.Context, vaultAddress, guardianTokenAddress string,
) (*MigrationResultPublic, *types.Error) {
	var batch []model.ActivityDocument

	namespaces := []struct {
		account      string
		activityType types.ActivityType
	}{
		{vaultAddress, types.DepositActivity},
		{vaultAddress, types.WithdrawalActivity},
		{guardianTokenAddress, types.GuardianAddedActivity},
	}
	for _, ns := range namespaces {
		if ns.account == "" {
			continue
		}
		activityType := ns.activityType
		activities, err := s.DbClient.FindActivitiesByAccount(ctx, ns.account, &activityType)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).
				Str("account", ns.account).
				Str("type", activityType.ToString()).
				Msg("skipping unreadable activity namespace during migration")
			continue
		}
		batch = append(batch, activities...)
	}

	if len(batch) == 0 {
		return &MigrationResultPublic{Ok: true, Migrated: 0}, nil
	}

	response, postErr := s.Clients.Migration.PostActivity(ctx, batch)
	if postErr != nil {
		log.Ctx(ctx).Error().Err(postErr).Msg("activity migration request failed")
		return nil, types.NewError(postErr.StatusCode, types.MigrationFailed, postErr)
	}

	log.Ctx(ctx).Info().Int("records", len(batch)).Msg("chain activity migrated to server")
	return &MigrationResultPublic{Ok: response.Ok, Migrated: len(batch)}, nil
}

// AdoptLedger upserts a migrated batch of withdrawal requests into the local
// store. This is the server side of MigrateLedgerToServer.
func (s *Services) AdoptLedger(ctx context.Context, requests []model.WithdrawalRequestDocument) (*MigrationResultPublic, *types.Error) {
	for i := range requests {
		if _, err := types.FromStringToWithdrawalStatus(requests[i].Status.ToString()); err != nil {
			return nil, types.NewError(http.StatusBadRequest, types.ValidationError, err)
		}
	}
	for i := range requests {
		if err := s.DbClient.SaveWithdrawalRequest(ctx, &requests[i]); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("requestID", requests[i].ID).Msg("failed to adopt withdrawal request")
			return nil, types.NewInternalServiceError(err)
		}
	}
	return &MigrationResultPublic{Ok: true, Migrated: len(requests)}, nil
}

// AdoptActivity upserts a migrated batch of activity records.
func (s *Services) AdoptActivity(ctx context.Context, activities []model.ActivityDocument) (*MigrationResultPublic, *types.Error) {
	if err := s.DbClient.SaveActivities(ctx, activities); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to adopt activity batch")
		return nil, types.NewInternalServiceError(err)
	}
	return &MigrationResultPublic{Ok: true, Migrated: len(activities)}, nil
}
