package handlers

import (
	"context"
	"net/http"

	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/services"
	"github.com/spendvault/custody-api-service/internal/types"
)

type Handler struct {
	config   *config.Config
	services *services.Services
}

type PublicResponse[T any] struct {
	Data T `json:"data"`
}

type Result struct {
	Data   interface{}
	Status int
}

// NewResult returns a successful result, with default status code 200
func NewResult[T any](data T) *Result {
	res := &PublicResponse[T]{Data: data}
	return &Result{Data: res, Status: http.StatusOK}
}

func New(
	ctx context.Context, cfg *config.Config, services *services.Services,
) (*Handler, error) {
	return &Handler{
		config:   cfg,
		services: services,
	}, nil
}

func parseRequestIDQuery(request *http.Request, queryName string) (string, *types.Error) {
	id := request.URL.Query().Get(queryName)
	if id == "" {
		return "", types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, queryName+" is required")
	}
	return id, nil
}
