package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
	"github.com/spendvault/custody-api-service/internal/utils"
)

// SaveWithdrawalRequest inserts the request or replaces an existing record
// with the same id. The vault address and all signer addresses are normalized
// to lowercase before write.
func (db *Database) SaveWithdrawalRequest(ctx context.Context, request *model.WithdrawalRequestDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalRequestCollection)

	normalizeWithdrawalRequest(request)
	opts := options.Replace().SetUpsert(true)
	_, err := client.ReplaceOne(ctx, bson.M{"_id": request.ID}, request, opts)
	if err != nil {
		return err
	}
	return nil
}

func (db *Database) FindWithdrawalRequestByID(ctx context.Context, id string) (*model.WithdrawalRequestDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalRequestCollection)
	filter := bson.M{"_id": id}
	var request model.WithdrawalRequestDocument
	err := client.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id,
				Message: "withdrawal request not found",
			}
		}
		return nil, err
	}
	return &request, nil
}

func (db *Database) FindWithdrawalRequestsByVault(ctx context.Context, vaultAddress string) ([]model.WithdrawalRequestDocument, error) {
	filter := bson.M{"vault_address": utils.NormalizeAddress(vaultAddress)}
	return db.findWithdrawalRequests(ctx, filter)
}

// FindPendingWithdrawalRequests returns all requests that are still awaiting
// signatures or execution, i.e. everything not in a terminal status.
func (db *Database) FindPendingWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequestDocument, error) {
	filter := bson.M{"status": bson.M{"$nin": utils.TerminalStates()}}
	return db.findWithdrawalRequests(ctx, filter)
}

func (db *Database) FindAllWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequestDocument, error) {
	return db.findWithdrawalRequests(ctx, bson.M{})
}

func (db *Database) findWithdrawalRequests(ctx context.Context, filter bson.M) ([]model.WithdrawalRequestDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalRequestCollection)
	opts := options.Find().SetSort(bson.M{"created_at": -1})

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []model.WithdrawalRequestDocument
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// DeleteWithdrawalRequest removes the record if present. Deleting an unknown
// id is not an error.
func (db *Database) DeleteWithdrawalRequest(ctx context.Context, id string) error {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalRequestCollection)
	_, err := client.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// AddSignature appends a guardian signature to a withdrawal request within a
// transaction, so the duplicate-signer check and the quorum evaluation operate
// on the same snapshot that is written back.
// It returns a NotFoundError if the request does not exist and a
// DuplicateSignerError if the signer already signed it.
func (db *Database) AddSignature(ctx context.Context, id string, signature model.GuardianSignature) (*model.WithdrawalRequestDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalRequestCollection)

	session, err := db.Client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	transactionWork := func(sessCtx mongo.SessionContext) (interface{}, error) {
		var request model.WithdrawalRequestDocument
		if err := client.FindOne(sessCtx, bson.M{"_id": id}).Decode(&request); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &NotFoundError{
					Key:     id,
					Message: "withdrawal request not found",
				}
			}
			return nil, err
		}

		if request.HasSigner(signature.Signer) {
			return nil, &DuplicateSignerError{
				Key:     id,
				Signer:  signature.Signer,
				Message: "guardian has already signed this withdrawal request",
			}
		}

		signature.Signer = utils.NormalizeAddress(signature.Signer)
		request.Signatures = append(request.Signatures, signature)
		// Quorum is re-evaluated immediately after every append.
		if len(request.Signatures) >= request.RequiredQuorum &&
			utils.Contains(utils.QualifiedStatesToApproved(), request.Status) {
			request.Status = types.Approved
		}

		update := bson.M{"$set": bson.M{
			"signatures": request.Signatures,
			"status":     request.Status,
		}}
		if _, err := client.UpdateOne(sessCtx, bson.M{"_id": id}, update); err != nil {
			return nil, err
		}
		return &request, nil
	}

	result, err := session.WithTransaction(ctx, transactionWork)
	if err != nil {
		return nil, err
	}
	return result.(*model.WithdrawalRequestDocument), nil
}

// TransitionToExecutedState records the on-chain execution of an approved
// withdrawal request.
// It returns a NotFoundError if the request is not found or not in an eligible
// status to transition.
func (db *Database) TransitionToExecutedState(ctx context.Context, id, txHash string, executedAt int64) error {
	return db.transitionState(
		ctx, id, types.Executed, utils.QualifiedStatesToExecuted(),
		bson.M{"executed_at": executedAt, "execution_tx_hash": txHash},
	)
}

// TransitionToRejectedState rejects a request that has not yet been executed.
func (db *Database) TransitionToRejectedState(ctx context.Context, id string) error {
	return db.transitionState(ctx, id, types.Rejected, utils.QualifiedStatesToRejected(), nil)
}

func (db *Database) transitionState(
	ctx context.Context, id string, newStatus types.WithdrawalStatus,
	eligiblePreviousStatuses []types.WithdrawalStatus, additionalFields bson.M,
) error {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalRequestCollection)
	filter := bson.M{"_id": id, "status": bson.M{"$in": eligiblePreviousStatuses}}
	set := bson.M{"status": newStatus}
	for field, value := range additionalFields {
		set[field] = value
	}
	result, err := client.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "withdrawal request not found or not in eligible status to transition",
		}
	}
	return nil
}

// CleanupTerminalRequests prunes executed and rejected requests created
// strictly before the cutoff (epoch ms). Pending and approved requests are
// retained regardless of age.
func (db *Database) CleanupTerminalRequests(ctx context.Context, cutoff int64) (int64, error) {
	client := db.Client.Database(db.DbName).Collection(model.WithdrawalRequestCollection)
	filter := bson.M{
		"status":     bson.M{"$in": utils.TerminalStates()},
		"created_at": bson.M{"$lt": cutoff},
	}
	result, err := client.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func normalizeWithdrawalRequest(request *model.WithdrawalRequestDocument) {
	request.VaultAddress = utils.NormalizeAddress(request.VaultAddress)
	for i := range request.Signatures {
		request.Signatures[i].Signer = utils.NormalizeAddress(request.Signatures[i].Signer)
	}
}
