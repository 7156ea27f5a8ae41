package handler

import (
	"net/http"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// PingResponse is the liveness check body.
type PingResponse struct {
	Message string `json:"message"`
}

// HealthHandler serves the liveness check and the unknown-route fallback.
type HealthHandler struct {
	responder
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger.With().Str("handler", "health").Logger()},
	}
}

// Ping handles GET /ping. It never touches the database.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PingResponse{Message: "pong"})
}

// NotFound answers any unregistered route.
func (h *HealthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, model.ErrorResponse{
		Message: "Route " + r.Method + " " + r.URL.Path + " not found",
		Error:   model.ErrCodeRouteNotFound,
	})
}
