package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/spendvault/custody-api-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/withdrawal-requests", registerHandler(handlers.CreateWithdrawalRequest))
	r.Get("/v1/withdrawal-requests", registerHandler(handlers.GetWithdrawalRequest))
	r.Delete("/v1/withdrawal-requests", registerHandler(handlers.DeleteWithdrawalRequest))
	r.Get("/v1/withdrawal-requests/pending", registerHandler(handlers.GetPendingWithdrawalRequests))
	r.Get("/v1/withdrawal-requests/signature-status", registerHandler(handlers.GetSignatureStatus))
	r.Post("/v1/withdrawal-requests/signatures", registerHandler(handlers.AddSignature))
	r.Post("/v1/withdrawal-requests/execute", registerHandler(handlers.ExecuteWithdrawalRequest))
	r.Post("/v1/withdrawal-requests/reject", registerHandler(handlers.RejectWithdrawalRequest))
	r.Get("/v1/vaults/withdrawal-requests", registerHandler(handlers.GetVaultWithdrawalRequests))
	r.Get("/v1/vaults/activity", registerHandler(handlers.GetVaultActivity))
	r.Post("/v1/migrations/ledger", registerHandler(handlers.AdoptLedger))
	r.Post("/v1/migrations/activity", registerHandler(handlers.AdoptActivity))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
