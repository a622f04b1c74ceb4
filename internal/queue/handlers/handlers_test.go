package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendvault/custody-api-service/internal/clients"
	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/db"
	"github.com/spendvault/custody-api-service/internal/db/model"
	queueClient "github.com/spendvault/custody-api-service/internal/queue/client"
	"github.com/spendvault/custody-api-service/internal/services"
	"github.com/spendvault/custody-api-service/internal/types"
)

const (
	testVault         = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	testGuardianToken = "0x22d491Bde2303f2f43325b2108D26f1eAbA1e32b"
)

func newTestQueueHandler(t *testing.T) (*QueueHandler, db.DBClient) {
	t.Helper()
	cfg := &config.Config{
		Cleanup: config.CleanupConfig{Interval: 60, MaxAge: 30 * 24 * time.Hour},
	}
	dbClient := db.NewInMemoryClient()
	service := services.NewWithClient(cfg, dbClient, &clients.Clients{})
	return NewQueueHandler(service), dbClient
}

func marshalEvent(t *testing.T, event interface{}) string {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return string(body)
}

func TestDepositHandler(t *testing.T) {
	handler, _ := newTestQueueHandler(t)

	body := marshalEvent(t, queueClient.VaultDepositEvent{
		EventType:    queueClient.DepositEventType,
		TxHash:       "0xdep1",
		VaultAddress: testVault,
		Token:        "DAI",
		Amount:       "1000000000000000000",
		Depositor:    "0xsomeone",
		Timestamp:    100,
	})
	require.Nil(t, handler.DepositHandler(context.Background(), body))

	activities, err := handler.Services.GetVaultActivity(context.Background(), testVault, nil)
	require.Nil(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "deposit", activities[0].Type)
	assert.Equal(t, "0xdep1", activities[0].ID)
}

func TestDepositHandlerBadPayload(t *testing.T) {
	handler, _ := newTestQueueHandler(t)

	err := handler.DepositHandler(context.Background(), "{not json")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestWithdrawalHandlerWithoutRequestID(t *testing.T) {
	handler, _ := newTestQueueHandler(t)

	body := marshalEvent(t, queueClient.VaultWithdrawalEvent{
		EventType:    queueClient.WithdrawalEventType,
		TxHash:       "0xwd1",
		VaultAddress: testVault,
		Token:        "DAI",
		Amount:       "500",
		Recipient:    "0xsomeone",
		Timestamp:    100,
	})
	require.Nil(t, handler.WithdrawalHandler(context.Background(), body))

	activities, err := handler.Services.GetVaultActivity(context.Background(), testVault, nil)
	require.Nil(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "withdrawal", activities[0].Type)
}

func TestWithdrawalHandlerMarksRequestExecuted(t *testing.T) {
	handler, dbClient := newTestQueueHandler(t)
	ctx := context.Background()

	approved := model.WithdrawalRequestDocument{
		ID: "req-1", VaultAddress: testVault, Status: types.Approved, CreatedAt: 1, RequiredQuorum: 1,
	}
	require.NoError(t, dbClient.SaveWithdrawalRequest(ctx, &approved))

	body := marshalEvent(t, queueClient.VaultWithdrawalEvent{
		EventType:    queueClient.WithdrawalEventType,
		TxHash:       "0xwd1",
		VaultAddress: testVault,
		Token:        "DAI",
		Amount:       "500",
		Recipient:    "0xsomeone",
		RequestID:    "req-1",
		Timestamp:    100,
	})
	require.Nil(t, handler.WithdrawalHandler(ctx, body))

	stored, err := dbClient.FindWithdrawalRequestByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, types.Executed, stored.Status)
	assert.Equal(t, "0xwd1", stored.ExecutionTxHash)
}

func TestWithdrawalHandlerToleratesUnknownRequestID(t *testing.T) {
	handler, _ := newTestQueueHandler(t)

	body := marshalEvent(t, queueClient.VaultWithdrawalEvent{
		EventType:    queueClient.WithdrawalEventType,
		TxHash:       "0xwd1",
		VaultAddress: testVault,
		Token:        "DAI",
		Amount:       "500",
		Recipient:    "0xsomeone",
		RequestID:    "never-tracked",
		Timestamp:    100,
	})
	// The event is still processed, the missing ledger record is not an error.
	require.Nil(t, handler.WithdrawalHandler(context.Background(), body))

	activities, err := handler.Services.GetVaultActivity(context.Background(), testVault, nil)
	require.Nil(t, err)
	assert.Len(t, activities, 1)
}

func TestGuardianChangeHandler(t *testing.T) {
	handler, _ := newTestQueueHandler(t)

	body := marshalEvent(t, queueClient.GuardianChangeEvent{
		EventType:            queueClient.GuardianEventType,
		TxHash:               "0xgu1",
		GuardianTokenAddress: testGuardianToken,
		Guardian:             "0xnewguardian",
		Timestamp:            100,
	})
	require.Nil(t, handler.GuardianChangeHandler(context.Background(), body))

	activities, err := handler.Services.GetVaultActivity(context.Background(), testGuardianToken, nil)
	require.Nil(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "guardian_added", activities[0].Type)
}
