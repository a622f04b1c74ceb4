package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/types"
)

type ActivityPublic struct {
	ID        string `json:"id"`
	Account   string `json:"account"`
	Type      string `json:"type"`
	Details   string `json:"details"`
	Timestamp int64  `json:"timestamp"`
}

// SaveActivityRecord caches a single on-chain activity entry. Saving the same
// id twice overwrites in place, so redelivered events are harmless.
func (s *Services) SaveActivityRecord(
	ctx context.Context, id, account string, activityType types.ActivityType, details string, timestamp int64,
) *types.Error {
	document := &model.ActivityDocument{
		ID:        id,
		Account:   account,
		Type:      activityType,
		Details:   details,
		Timestamp: timestamp,
	}
	if err := s.DbClient.SaveActivity(ctx, document); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("activityId", id).Msg("failed to save activity record")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "failed to save activity record")
	}
	return nil
}

// GetVaultActivity returns the cached activity feed for an account, newest
// first, optionally filtered by activity type.
func (s *Services) GetVaultActivity(
	ctx context.Context, account string, activityType *types.ActivityType,
) ([]ActivityPublic, *types.Error) {
	documents, err := s.DbClient.FindActivitiesByAccount(ctx, account, activityType)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to find activities by account")
		return nil, types.NewInternalServiceError(err)
	}

	activities := make([]ActivityPublic, 0, len(documents))
	for _, d := range documents {
		activities = append(activities, ActivityPublic{
			ID:        d.ID,
			Account:   d.Account,
			Type:      d.Type.ToString(),
			Details:   d.Details,
			Timestamp: d.Timestamp,
		})
	}
	return activities, nil
}
