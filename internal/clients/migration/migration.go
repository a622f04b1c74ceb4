package migration

import (
	"context"
	"net/http"
	"time"

	baseclient "github.com/spendvault/custody-api-service/internal/clients/base"
	"github.com/spendvault/custody-api-service/internal/config"
	"github.com/spendvault/custody-api-service/internal/db/model"
	"github.com/spendvault/custody-api-service/internal/observability/tracing"
	"github.com/spendvault/custody-api-service/internal/types"
)

type Client struct {
	config     *config.MigrationConfig
	httpClient *http.Client
}

func NewClient(cfg *config.MigrationConfig) *Client {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
	return &Client{
		config:     cfg,
		httpClient: httpClient,
	}
}

// Necessary for the BaseClient interface
func (c *Client) GetBaseURL() string {
	return c.config.BaseUrl
}

func (c *Client) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

// adoptionEnvelope matches the response body of the adoption endpoints, which
// wrap their payload in a data field.
type adoptionEnvelope struct {
	Data AdoptionResponse `json:"data"`
}

func (c *Client) PostLedger(
	ctx context.Context, requests []model.WithdrawalRequestDocument,
) (*AdoptionResponse, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path:    c.config.LedgerEndpoint,
		Headers: map[string]string{"Content-Type": "application/json"},
	}
	envelope, err := tracing.WrapWithSpan[*adoptionEnvelope](ctx, "postLedger", func() (*adoptionEnvelope, error) {
		response, callErr := baseclient.SendRequest[[]model.WithdrawalRequestDocument, adoptionEnvelope](
			ctx, c, http.MethodPost, opts, &requests,
		)
		if callErr != nil {
			return nil, callErr
		}
		return response, nil
	})
	if err != nil {
		return nil, asTypedError(err)
	}
	return &envelope.Data, nil
}

func (c *Client) PostActivity(
	ctx context.Context, activities []model.ActivityDocument,
) (*AdoptionResponse, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path:    c.config.ActivityEndpoint,
		Headers: map[string]string{"Content-Type": "application/json"},
	}
	envelope, err := tracing.WrapWithSpan[*adoptionEnvelope](ctx, "postActivity", func() (*adoptionEnvelope, error) {
		response, callErr := baseclient.SendRequest[[]model.ActivityDocument, adoptionEnvelope](
			ctx, c, http.MethodPost, opts, &activities,
		)
		if callErr != nil {
			return nil, callErr
		}
		return response, nil
	})
	if err != nil {
		return nil, asTypedError(err)
	}
	return &envelope.Data, nil
}

func asTypedError(err error) *types.Error {
	if typedErr, ok := err.(*types.Error); ok {
		return typedErr
	}
	return types.NewInternalServiceError(err)
}
