package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

func newTestRequest(id string, status types.WithdrawalStatus, createdAt int64, quorum int) *model.WithdrawalRequestDocument {
	amount, _ := types.NewBigIntFromString("1000000000000000000")
	nonce, _ := types.NewBigIntFromString("7")
	return &model.WithdrawalRequestDocument{
		ID:           id,
		VaultAddress: "0xVault0000000000000000000000000000000001",
		Request: model.WithdrawalPayload{
			Token:     "0xtoken0000000000000000000000000000000001",
			Amount:    amount,
			Recipient: "0xrecipient00000000000000000000000000001",
			Reason:    "ops payout",
			Nonce:     nonce,
		},
		Signatures:     []model.GuardianSignature{},
		RequiredQuorum: quorum,
		Status:         status,
		CreatedAt:      createdAt,
	}
}

func TestSaveWithdrawalRequestNormalizesAndUpserts(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	request := newTestRequest("req-1", types.Pending, 100, 2)
	require.NoError(t, client.SaveWithdrawalRequest(ctx, request))

	stored, err := client.FindWithdrawalRequestByID(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "0xvault0000000000000000000000000000000001", stored.VaultAddress,
		"vault addresses are stored lowercase")

	// Saving the same id again replaces the record instead of duplicating it.
	request.Request.Reason = "updated"
	require.NoError(t, client.SaveWithdrawalRequest(ctx, request))

	all, err := client.FindAllWithdrawalRequests(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "updated", all[0].Request.Reason)
}

func TestFindWithdrawalRequestByIDNotFound(t *testing.T) {
	client := NewInMemoryClient()

	_, err := client.FindWithdrawalRequestByID(context.Background(), "missing")
	assert.True(t, IsNotFoundError(err), "missing ids surface as a NotFoundError")
}

func TestFindWithdrawalRequestsByVaultIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("req-1", types.Pending, 100, 2)))

	found, err := client.FindWithdrawalRequestsByVault(ctx, "0xVAULT0000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Len(t, found, 1, "vault lookups match regardless of address casing")
}

func TestAddSignaturePromotesOnQuorum(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("req-1", types.Pending, 100, 2)))

	first, err := client.AddSignature(ctx, "req-1", model.GuardianSignature{
		Signer: "0xGuardianA000000000000000000000000000001", Signature: "0x01",
	})
	require.NoError(t, err)
	assert.Equal(t, types.Pending, first.Status, "one of two signatures keeps the request pending")
	assert.Len(t, first.Signatures, 1)
	assert.Equal(t, "0xguardiana000000000000000000000000000001", first.Signatures[0].Signer,
		"signer addresses are stored lowercase")

	second, err := client.AddSignature(ctx, "req-1", model.GuardianSignature{
		Signer: "0xGuardianB000000000000000000000000000001", Signature: "0x02",
	})
	require.NoError(t, err)
	assert.Equal(t, types.Approved, second.Status, "reaching quorum promotes the request")
	assert.Len(t, second.Signatures, 2)
}

func TestAddSignatureRejectsDuplicateSigner(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("req-1", types.Pending, 100, 2)))

	_, err := client.AddSignature(ctx, "req-1", model.GuardianSignature{
		Signer: "0xguardiana000000000000000000000000000001", Signature: "0x01",
	})
	require.NoError(t, err)

	// Same guardian, different casing.
	_, err = client.AddSignature(ctx, "req-1", model.GuardianSignature{
		Signer: "0xGUARDIANA000000000000000000000000000001", Signature: "0x03",
	})
	assert.True(t, IsDuplicateSignerError(err), "a guardian may sign a request at most once")

	stored, findErr := client.FindWithdrawalRequestByID(ctx, "req-1")
	require.NoError(t, findErr)
	assert.Len(t, stored.Signatures, 1, "the rejected signature must not be persisted")
	assert.Equal(t, types.Pending, stored.Status)
}

func TestAddSignatureUnknownRequest(t *testing.T) {
	client := NewInMemoryClient()

	_, err := client.AddSignature(context.Background(), "missing", model.GuardianSignature{
		Signer: "0xguardiana000000000000000000000000000001", Signature: "0x01",
	})
	assert.True(t, IsNotFoundError(err))
}

func TestAddSignatureDoesNotRepromoteTerminalRequest(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	rejected := newTestRequest("req-1", types.Rejected, 100, 1)
	require.NoError(t, client.SaveWithdrawalRequest(ctx, rejected))

	updated, err := client.AddSignature(ctx, "req-1", model.GuardianSignature{
		Signer: "0xguardiana000000000000000000000000000001", Signature: "0x01",
	})
	require.NoError(t, err)
	assert.Equal(t, types.Rejected, updated.Status,
		"quorum promotion only applies to pending requests")
}

func TestTransitionToExecutedStateGuards(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("pending", types.Pending, 100, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("approved", types.Approved, 100, 2)))

	err := client.TransitionToExecutedState(ctx, "pending", "0xhash", 200)
	assert.True(t, IsNotFoundError(err), "a request without quorum cannot be executed")

	err = client.TransitionToExecutedState(ctx, "approved", "0xhash", 200)
	require.NoError(t, err)

	stored, findErr := client.FindWithdrawalRequestByID(ctx, "approved")
	require.NoError(t, findErr)
	assert.Equal(t, types.Executed, stored.Status)
	assert.Equal(t, "0xhash", stored.ExecutionTxHash)
	assert.Equal(t, int64(200), stored.ExecutedAt)

	// Executed is terminal, a second transition is refused.
	err = client.TransitionToExecutedState(ctx, "approved", "0xother", 300)
	assert.True(t, IsNotFoundError(err))
}

func TestTransitionToRejectedStateGuards(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("pending", types.Pending, 100, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("approved", types.Approved, 100, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("executed", types.Executed, 100, 2)))

	require.NoError(t, client.TransitionToRejectedState(ctx, "pending"))
	require.NoError(t, client.TransitionToRejectedState(ctx, "approved"))

	err := client.TransitionToRejectedState(ctx, "executed")
	assert.True(t, IsNotFoundError(err), "an executed request cannot be rejected")
}

func TestCleanupTerminalRequestsBoundary(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	cutoff := int64(1000)
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("old-executed", types.Executed, 999, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("at-cutoff", types.Executed, 1000, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("old-rejected", types.Rejected, 500, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("old-pending", types.Pending, 1, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("old-approved", types.Approved, 1, 2)))

	removed, err := client.CleanupTerminalRequests(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed, "only terminal records strictly older than the cutoff are removed")

	_, err = client.FindWithdrawalRequestByID(ctx, "old-executed")
	assert.True(t, IsNotFoundError(err))
	_, err = client.FindWithdrawalRequestByID(ctx, "old-rejected")
	assert.True(t, IsNotFoundError(err))

	// Records at the cutoff or still awaiting a decision are retained.
	for _, id := range []string{"at-cutoff", "old-pending", "old-approved"} {
		_, err = client.FindWithdrawalRequestByID(ctx, id)
		assert.NoError(t, err, "record %q should be retained", id)
	}
}

func TestFindPendingExcludesTerminal(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("pending", types.Pending, 100, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("approved", types.Approved, 200, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("executed", types.Executed, 300, 2)))
	require.NoError(t, client.SaveWithdrawalRequest(ctx, newTestRequest("rejected", types.Rejected, 400, 2)))

	pending, err := client.FindPendingWithdrawalRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2, "approved requests still await execution and count as open")
	assert.Equal(t, "approved", pending[0].ID, "results are sorted newest first")
	assert.Equal(t, "pending", pending[1].ID)
}

func TestActivityStorage(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	deposit := types.DepositActivity
	require.NoError(t, client.SaveActivity(ctx, &model.ActivityDocument{
		ID: "act-1", Account: "0xAccountA", Type: deposit, Details: "100 in", Timestamp: 10,
	}))
	require.NoError(t, client.SaveActivity(ctx, &model.ActivityDocument{
		ID: "act-2", Account: "0xaccounta", Type: types.WithdrawalActivity, Details: "50 out", Timestamp: 20,
	}))
	require.NoError(t, client.SaveActivity(ctx, &model.ActivityDocument{
		ID: "act-3", Account: "0xaccountb", Type: deposit, Details: "1 in", Timestamp: 30,
	}))

	all, err := client.FindActivitiesByAccount(ctx, "0xACCOUNTA", nil)
	require.NoError(t, err)
	require.Len(t, all, 2, "account matching is case-insensitive")
	assert.Equal(t, "act-2", all[0].ID, "results are sorted newest first")

	deposits, err := client.FindActivitiesByAccount(ctx, "0xaccounta", &deposit)
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, "act-1", deposits[0].ID)
}

func TestUnprocessableMessageStorage(t *testing.T) {
	ctx := context.Background()
	client := NewInMemoryClient()

	require.NoError(t, client.SaveUnprocessableMessage(ctx, `{"event_type":2}`, "receipt-1"))
	require.NoError(t, client.SaveUnprocessableMessage(ctx, `{"event_type":3}`, "receipt-2"))

	messages, err := client.FindUnprocessableMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	require.NoError(t, client.DeleteUnprocessableMessage(ctx, "receipt-1"))
	messages, err = client.FindUnprocessableMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "receipt-2", messages[0].Receipt)
}
