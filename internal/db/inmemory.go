package db

import (
	"context"
	"sort"
	"sync"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
	"github.com/spendvault/custody-api-service/internal/utils"
)

// InMemoryClient is a DBClient backed by process memory. It mirrors the
// semantics of the Mongo implementation, including the atomicity of
// AddSignature, and exists so that the service layer can be tested without a
// running database.
type InMemoryClient struct {
	mu             sync.Mutex
	requests       map[string]model.WithdrawalRequestDocument
	activities     map[string]model.ActivityDocument
	unprocessables []model.UnprocessableMessageDocument
}

var _ DBClient = (*InMemoryClient)(nil)

func NewInMemoryClient() *InMemoryClient {
	return &InMemoryClient{
		requests:   make(map[string]model.WithdrawalRequestDocument),
		activities: make(map[string]model.ActivityDocument),
	}
}

func (c *InMemoryClient) Ping(ctx context.Context) error {
	return nil
}

func (c *InMemoryClient) SaveWithdrawalRequest(ctx context.Context, request *model.WithdrawalRequestDocument) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := cloneWithdrawalRequest(*request)
	normalizeWithdrawalRequest(&doc)
	c.requests[doc.ID] = doc
	return nil
}

func (c *InMemoryClient) FindWithdrawalRequestByID(ctx context.Context, id string) (*model.WithdrawalRequestDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.requests[id]
	if !ok {
		return nil, &NotFoundError{Key: id, Message: "withdrawal request not found"}
	}
	clone := cloneWithdrawalRequest(doc)
	return &clone, nil
}

func (c *InMemoryClient) FindWithdrawalRequestsByVault(ctx context.Context, vaultAddress string) ([]model.WithdrawalRequestDocument, error) {
	normalized := utils.NormalizeAddress(vaultAddress)
	return c.findWithdrawalRequests(func(doc model.WithdrawalRequestDocument) bool {
		return doc.VaultAddress == normalized
	}), nil
}

func (c *InMemoryClient) FindPendingWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequestDocument, error) {
	return c.findWithdrawalRequests(func(doc model.WithdrawalRequestDocument) bool {
		return !doc.Status.IsTerminal()
	}), nil
}

func (c *InMemoryClient) FindAllWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequestDocument, error) {
	return c.findWithdrawalRequests(func(model.WithdrawalRequestDocument) bool { return true }), nil
}

func (c *InMemoryClient) findWithdrawalRequests(match func(model.WithdrawalRequestDocument) bool) []model.WithdrawalRequestDocument {
	c.mu.Lock()
	defer c.mu.Unlock()

	var results []model.WithdrawalRequestDocument
	for _, doc := range c.requests {
		if match(doc) {
			results = append(results, cloneWithdrawalRequest(doc))
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt > results[j].CreatedAt
	})
	return results
}

func (c *InMemoryClient) DeleteWithdrawalRequest(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.requests, id)
	return nil
}

func (c *InMemoryClient) AddSignature(ctx context.Context, id string, signature model.GuardianSignature) (*model.WithdrawalRequestDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.requests[id]
	if !ok {
		return nil, &NotFoundError{Key: id, Message: "withdrawal request not found"}
	}
	if doc.HasSigner(signature.Signer) {
		return nil, &DuplicateSignerError{
			Key:     id,
			Signer:  signature.Signer,
			Message: "guardian has already signed this withdrawal request",
		}
	}

	updated := cloneWithdrawalRequest(doc)
	signature.Signer = utils.NormalizeAddress(signature.Signer)
	updated.Signatures = append(updated.Signatures, signature)
	if len(updated.Signatures) >= updated.RequiredQuorum &&
		utils.Contains(utils.QualifiedStatesToApproved(), updated.Status) {
		updated.Status = types.Approved
	}
	c.requests[id] = cloneWithdrawalRequest(updated)
	return &updated, nil
}

func (c *InMemoryClient) TransitionToExecutedState(ctx context.Context, id, txHash string, executedAt int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.requests[id]
	if !ok || !utils.Contains(utils.QualifiedStatesToExecuted(), doc.Status) {
		return &NotFoundError{Key: id, Message: "withdrawal request not found or not in eligible status to transition"}
	}
	doc.Status = types.Executed
	doc.ExecutedAt = executedAt
	doc.ExecutionTxHash = txHash
	c.requests[id] = doc
	return nil
}

func (c *InMemoryClient) TransitionToRejectedState(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.requests[id]
	if !ok || !utils.Contains(utils.QualifiedStatesToRejected(), doc.Status) {
		return &NotFoundError{Key: id, Message: "withdrawal request not found or not in eligible status to transition"}
	}
	doc.Status = types.Rejected
	c.requests[id] = doc
	return nil
}

func (c *InMemoryClient) CleanupTerminalRequests(ctx context.Context, cutoff int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed int64
	for id, doc := range c.requests {
		if doc.Status.IsTerminal() && doc.CreatedAt < cutoff {
			delete(c.requests, id)
			removed++
		}
	}
	return removed, nil
}

func (c *InMemoryClient) SaveActivity(ctx context.Context, activity *model.ActivityDocument) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := *activity
	doc.Account = utils.NormalizeAddress(doc.Account)
	c.activities[doc.ID] = doc
	return nil
}

func (c *InMemoryClient) SaveActivities(ctx context.Context, activities []model.ActivityDocument) error {
	for i := range activities {
		if err := c.SaveActivity(ctx, &activities[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c *InMemoryClient) FindActivitiesByAccount(
	ctx context.Context, account string, activityType *types.ActivityType,
) ([]model.ActivityDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	normalized := utils.NormalizeAddress(account)
	var results []model.ActivityDocument
	for _, doc := range c.activities {
		if doc.Account != normalized {
			continue
		}
		if activityType != nil && doc.Type != *activityType {
			continue
		}
		results = append(results, doc)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Timestamp > results[j].Timestamp
	})
	return results, nil
}

func (c *InMemoryClient) SaveUnprocessableMessage(ctx context.Context, messageBody, receipt string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unprocessables = append(c.unprocessables, model.UnprocessableMessageDocument{
		MessageBody: messageBody,
		Receipt:     receipt,
	})
	return nil
}

func (c *InMemoryClient) FindUnprocessableMessages(ctx context.Context) ([]model.UnprocessableMessageDocument, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	messages := make([]model.UnprocessableMessageDocument, len(c.unprocessables))
	copy(messages, c.unprocessables)
	return messages, nil
}

func (c *InMemoryClient) DeleteUnprocessableMessage(ctx context.Context, receipt string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, msg := range c.unprocessables {
		if msg.Receipt == receipt {
			c.unprocessables = append(c.unprocessables[:i], c.unprocessables[i+1:]...)
			return nil
		}
	}
	return nil
}

func cloneWithdrawalRequest(doc model.WithdrawalRequestDocument) model.WithdrawalRequestDocument {
	clone := doc
	clone.Signatures = make([]model.GuardianSignature, len(doc.Signatures))
	copy(clone.Signatures, doc.Signatures)
	return clone
}
