package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dropy/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes JSON requests, calls the CampaignUseCase and maps
// program error codes onto responses.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/transactions", h.handleSubmit)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Post("/allocate", h.handleAllocate)
			r.Get("/addresses", h.handleAddresses)
			r.Get("/executions", h.handleExecutions)
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}
