package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
	"github.com/spendvault/custody-api-service/internal/utils"
)

// SaveActivity upserts a single on-chain activity record by id, which makes
// event redelivery from the queue idempotent.
func (db *Database) SaveActivity(ctx context.Context, activity *model.ActivityDocument) error {
	client := db.Client.Database(db.DbName).Collection(model.ActivityCollection)
	activity.Account = utils.NormalizeAddress(activity.Account)
	opts := options.Replace().SetUpsert(true)
	_, err := client.ReplaceOne(ctx, bson.M{"_id": activity.ID}, activity, opts)
	return err
}

// SaveActivities upserts a batch of activity records in a single bulk write.
func (db *Database) SaveActivities(ctx context.Context, activities []model.ActivityDocument) error {
	if len(activities) == 0 {
		return nil
	}
	client := db.Client.Database(db.DbName).Collection(model.ActivityCollection)

	writes := make([]mongo.WriteModel, 0, len(activities))
	for i := range activities {
		activities[i].Account = utils.NormalizeAddress(activities[i].Account)
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": activities[i].ID}).
			SetReplacement(activities[i]).
			SetUpsert(true))
	}

	opts := options.BulkWrite().SetOrdered(false)
	_, err := client.BulkWrite(ctx, writes, opts)
	return err
}

func (db *Database) FindActivitiesByAccount(
	ctx context.Context, account string, activityType *types.ActivityType,
) ([]model.ActivityDocument, error) {
	client := db.Client.Database(db.DbName).Collection(model.ActivityCollection)

	filter := bson.M{"account": utils.NormalizeAddress(account)}
	if activityType != nil {
		filter["type"] = *activityType
	}
	opts := options.Find().SetSort(bson.M{"timestamp": -1})

	cursor, err := client.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []model.ActivityDocument
	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
