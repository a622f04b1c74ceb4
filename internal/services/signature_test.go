package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendvault/custody-api-service/internal/db"
	"github.com/spendvault/custody-api-service/internal/types"
)

const (
	guardianA = "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1"
	guardianB = "0xFFcf8FDEE72ac11b5c542428B35EEF5769C409f0"
)

func testSignature(b byte) string {
	return "0x" + strings.Repeat(string([]byte{hexDigit(b >> 4), hexDigit(b & 0x0f)}), 65)
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + v - 10
}

func TestAddSignatureQuorumLifecycle(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})
	created := createTestRequest(t, s, "7", 2)

	// First guardian signs, the request stays pending.
	updated, err := s.AddSignature(context.Background(), created.ID, guardianA, testSignature(0x01))
	require.Nil(t, err)
	assert.Equal(t, types.Pending.ToString(), updated.Status)
	require.Len(t, updated.Signatures, 1)
	assert.Equal(t, strings.ToLower(guardianA), updated.Signatures[0].Signer)

	status, err := s.GetSignatureStatus(context.Background(), created.ID)
	require.Nil(t, err)
	assert.Equal(t, 1, status.Collected)
	assert.Equal(t, 2, status.RequiredQuorum)
	assert.False(t, status.Approved)

	// Second guardian completes the quorum.
	updated, err = s.AddSignature(context.Background(), created.ID, guardianB, testSignature(0x02))
	require.Nil(t, err)
	assert.Equal(t, types.Approved.ToString(), updated.Status, "quorum promotes the request to approved")

	status, err = s.GetSignatureStatus(context.Background(), created.ID)
	require.Nil(t, err)
	assert.Equal(t, 2, status.Collected)
	assert.True(t, status.Approved)
	assert.Equal(t, []string{strings.ToLower(guardianA), strings.ToLower(guardianB)}, status.Signers)
}

func TestAddSignatureDuplicateSigner(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})
	created := createTestRequest(t, s, "7", 2)

	_, err := s.AddSignature(context.Background(), created.ID, guardianA, testSignature(0x01))
	require.Nil(t, err)

	// The same guardian signs again with different address casing.
	_, err = s.AddSignature(context.Background(), created.ID, strings.ToUpper(guardianA), testSignature(0x03))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, types.DuplicateSigner, err.ErrorCode)

	status, statusErr := s.GetSignatureStatus(context.Background(), created.ID)
	require.Nil(t, statusErr)
	assert.Equal(t, 1, status.Collected, "the duplicate signature must not count toward quorum")
}

func TestAddSignatureUnknownRequest(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})

	_, err := s.AddSignature(context.Background(), "missing", guardianA, testSignature(0x01))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, types.NotFound, err.ErrorCode)
}

func TestMarkExecutedRequiresQuorum(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})
	created := createTestRequest(t, s, "7", 2)
	txHash := "0x" + strings.Repeat("ab", 32)

	// Still pending, execution is refused.
	err := s.MarkExecuted(context.Background(), created.ID, txHash)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)

	_, addErr := s.AddSignature(context.Background(), created.ID, guardianA, testSignature(0x01))
	require.Nil(t, addErr)
	_, addErr = s.AddSignature(context.Background(), created.ID, guardianB, testSignature(0x02))
	require.Nil(t, addErr)

	require.Nil(t, s.MarkExecuted(context.Background(), created.ID, txHash))

	stored, getErr := s.GetWithdrawalRequest(context.Background(), created.ID)
	require.Nil(t, getErr)
	assert.Equal(t, types.Executed.ToString(), stored.Status)
	assert.Equal(t, txHash, stored.ExecutionTxHash)
	assert.NotZero(t, stored.ExecutedAt)

	// Executed is terminal.
	err = s.MarkExecuted(context.Background(), created.ID, txHash)
	assert.NotNil(t, err)
	err = s.MarkRejected(context.Background(), created.ID)
	assert.NotNil(t, err)
}

func TestMarkRejected(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})
	created := createTestRequest(t, s, "7", 1)

	require.Nil(t, s.MarkRejected(context.Background(), created.ID))

	stored, getErr := s.GetWithdrawalRequest(context.Background(), created.ID)
	require.Nil(t, getErr)
	assert.Equal(t, types.Rejected.ToString(), stored.Status)

	// Rejected is terminal, execution is refused afterwards.
	err := s.MarkExecuted(context.Background(), created.ID, "0x"+strings.Repeat("ab", 32))
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
}

func TestGetSignatureStatusNotFound(t *testing.T) {
	s := newTestServices(db.NewInMemoryClient(), &recordingMigrationClient{})

	_, err := s.GetSignatureStatus(context.Background(), "missing")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
}
