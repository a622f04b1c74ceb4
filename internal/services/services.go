package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/spendvault/custody-api-service/internal/clients"
	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/db"
	"github.com/spendvault/custody-api-service/internal/types"
)

// Service layer contains the business logic and is used to interact with
// the database and other external clients (if any).
type Services struct {
	DbClient db.DBClient
	Clients  *clients.Clients
	cfg      *config.Config
}

func New(ctx context.Context, cfg *config.Config, clients *clients.Clients) (*Services, error) {
	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		log.Ctx(ctx).Fatal().Err(err).Msg("error while creating db client")
		return nil, err
	}
	return &Services{
		DbClient: dbClient,
		Clients:  clients,
		cfg:      cfg,
	}, nil
}

// NewWithClient builds the service layer on top of an already constructed
// storage client. Tests use it to substitute the in-memory store.
func NewWithClient(cfg *config.Config, dbClient db.DBClient, clients *clients.Clients) *Services {
	return &Services{
		DbClient: dbClient,
		Clients:  clients,
		cfg:      cfg,
	}
}

// DoHealthCheck checks the health of the services by ping the database.
func (s *Services) DoHealthCheck(ctx context.Context) error {
	return s.DbClient.Ping(ctx)
}

func (s *Services) SaveUnprocessableMessages(ctx context.Context, messageBody, receipt string) error {
	err := s.DbClient.SaveUnprocessableMessage(ctx, messageBody, receipt)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("error while saving unprocessable message")
		return types.NewErrorWithMsg(http.StatusInternalServerError, types.InternalServiceError, "error while saving unprocessable message")
	}
	return nil
}
