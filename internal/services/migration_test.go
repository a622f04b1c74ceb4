package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendvault/custody-api-service/internal/clients"
	"github.com/spendvault/custody-api-service/internal/clients/migration"
	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/db"
	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

func TestExportLedger(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})

	created := createTestRequest(t, s, "123456789012345678901234567890", 2)

	exported, err := s.ExportLedger(context.Background())
	require.Nil(t, err)

	var parsed []model.WithdrawalRequestDocument
	require.NoError(t, json.Unmarshal([]byte(exported), &parsed), "the export must be valid JSON")
	require.Len(t, parsed, 1)
	assert.Equal(t, created.ID, parsed[0].ID)
	assert.Equal(t, "123456789012345678901234567890", parsed[0].Request.Nonce.String(),
		"huge nonces survive the export as decimal strings")
	assert.Equal(t, "1000000000000000000", parsed[0].Request.Amount.String())
}

func TestExportLedgerEmpty(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})

	exported, err := s.ExportLedger(context.Background())
	require.Nil(t, err)
	assert.Equal(t, "[]", exported, "an empty ledger exports as an empty array, not null")
}

func TestMigrateLedgerToServer(t *testing.T) {
	migrationClient := &recordingMigrationClient{}
	s := newTestServices(db.NewInMemoryClient(), migrationClient)

	createTestRequest(t, s, "1", 2)
	createTestRequest(t, s, "2", 2)

	result, err := s.MigrateLedgerToServer(context.Background())
	require.Nil(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, 2, result.Migrated)
	assert.Equal(t, 1, migrationClient.ledgerCalls)
	assert.Len(t, migrationClient.lastLedger, 2)
}

func TestMigrateLedgerToServerFailure(t *testing.T) {
	migrationClient := &recordingMigrationClient{
		failWith: types.NewErrorWithMsg(http.StatusBadGateway, types.InternalServiceError, "remote unavailable"),
	}
	s := newTestServices(db.NewInMemoryClient(), migrationClient)

	createTestRequest(t, s, "1", 2)

	_, err := s.MigrateLedgerToServer(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadGateway, err.StatusCode, "the remote status code is surfaced")
	assert.Equal(t, types.MigrationFailed, err.ErrorCode)
}

func TestMigrateChainActivity(t *testing.T) {
	dbClient := db.NewInMemoryClient()
	migrationClient := &recordingMigrationClient{}
	s := newTestServices(dbClient, migrationClient)

	guardianToken := "0x22d491Bde2303f2f43325b2108D26f1eAbA1e32b"
	ctx := context.Background()
	require.NoError(t, dbClient.SaveActivity(ctx, &model.ActivityDocument{
		ID: "dep-1", Account: testVault, Type: types.DepositActivity, Details: "100 in", Timestamp: 10,
	}))
	require.NoError(t, dbClient.SaveActivity(ctx, &model.ActivityDocument{
		ID: "wd-1", Account: testVault, Type: types.WithdrawalActivity, Details: "50 out", Timestamp: 20,
	}))
	require.NoError(t, dbClient.SaveActivity(ctx, &model.ActivityDocument{
		ID: "gu-1", Account: guardianToken, Type: types.GuardianAddedActivity, Details: "guardian added", Timestamp: 30,
	}))

	result, err := s.MigrateChainActivity(ctx, testVault, guardianToken)
	require.Nil(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, 3, result.Migrated)
	assert.Equal(t, 1, migrationClient.activityCalls)
	assert.Len(t, migrationClient.lastActivity, 3)
}

func TestMigrateChainActivityEmptyBatch(t *testing.T) {
	migrationClient := &recordingMigrationClient{}
	s := newTestServices(db.NewInMemoryClient(), migrationClient)

	result, err := s.MigrateChainActivity(context.Background(), testVault, "")
	require.Nil(t, err)
	assert.True(t, result.Ok)
	assert.Zero(t, result.Migrated)
	assert.Zero(t, migrationClient.activityCalls, "an empty batch must not hit the network")
}

func TestAdoptLedgerRejectsUnknownStatus(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})

	batch := []model.WithdrawalRequestDocument{
		{ID: "req-1", VaultAddress: testVault, Status: "limbo", CreatedAt: 1, RequiredQuorum: 1},
	}
	_, err := s.AdoptLedger(context.Background(), batch)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.ValidationError, err.ErrorCode)
}

// The full round trip: one instance exports its ledger and posts it over HTTP,
// a second instance adopts it.
func TestLedgerMigrationRoundTrip(t *testing.T) {
	target := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/migrations/ledger", r.URL.Path)

		var requests []model.WithdrawalRequestDocument
		require.NoError(t, json.NewDecoder(r.Body).Decode(&requests))

		result, adoptErr := target.AdoptLedger(r.Context(), requests)
		require.Nil(t, adoptErr)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"data": result}) // nolint:errcheck
	}))
	defer server.Close()

	migrationClient := migration.NewClient(&config.MigrationConfig{
		BaseUrl:          server.URL,
		LedgerEndpoint:   "/v1/migrations/ledger",
		ActivityEndpoint: "/v1/migrations/activity",
		Timeout:          5000,
	})
	source := NewWithClient(testConfig(), db.NewInMemoryClient(), &clients.Clients{Migration: migrationClient})

	created := createTestRequest(t, source, "123456789012345678901234567890", 2)
	_, addErr := source.AddSignature(context.Background(), created.ID, guardianA, testSignature(0x01))
	require.Nil(t, addErr)

	result, err := source.MigrateLedgerToServer(context.Background())
	require.Nil(t, err)
	assert.True(t, result.Ok)
	assert.Equal(t, 1, result.Migrated)

	adopted, getErr := target.GetWithdrawalRequest(context.Background(), created.ID)
	require.Nil(t, getErr)
	assert.Equal(t, "123456789012345678901234567890", adopted.Request.Nonce.String(),
		"precision survives the full export, transport and adoption cycle")
	assert.Equal(t, types.Pending.ToString(), adopted.Status)
	require.Len(t, adopted.Signatures, 1)
	assert.Equal(t, strings.ToLower(guardianA), adopted.Signatures[0].Signer)
}

func TestAdoptActivity(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})

	batch := []model.ActivityDocument{
		{ID: "dep-1", Account: testVault, Type: types.DepositActivity, Details: "100 in", Timestamp: 10},
		{ID: "dep-2", Account: testVault, Type: types.DepositActivity, Details: "200 in", Timestamp: 20},
	}
	result, err := s.AdoptActivity(context.Background(), batch)
	require.Nil(t, err)
	assert.Equal(t, 2, result.Migrated)

	activities, getErr := s.GetVaultActivity(context.Background(), testVault, nil)
	require.Nil(t, getErr)
	assert.Len(t, activities, 2)
}
