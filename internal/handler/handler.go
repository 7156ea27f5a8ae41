package handler

import (
	"encoding/json"
	"net/http"

	"product-catalog/internal/middleware"
	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

const genericServerError = "An unexpected server error occurred."

// responder writes JSON bodies and error envelopes shared by every handler.
type responder struct {
	logger  zerolog.Logger
	devMode bool
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encode failure cannot be reported.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a client error (4xx). These are expected and logged at debug.
func (rs responder) writeError(w http.ResponseWriter, r *http.Request, status int, resp model.ErrorResponse) {
	resp.CorrelationID = middleware.RequestIDFromContext(r.Context())

	rs.logger.Debug().
		Int("status", status).
		Str("code", resp.Error).
		Str("message", resp.Message).
		Str("request_id", resp.CorrelationID).
		Msg("request rejected")

	writeJSON(w, status, resp)
}

// writeServerError logs err and answers 500. The error text reaches the
// client only in development mode.
func (rs responder) writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	resp := model.ErrorResponse{
		Message:       genericServerError,
		Error:         model.ErrCodeInternalError,
		CorrelationID: middleware.RequestIDFromContext(r.Context()),
	}
	if rs.devMode {
		resp.Message = err.Error()
	}

	rs.logger.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", resp.CorrelationID).
		Msg("handler error")

	writeJSON(w, http.StatusInternalServerError, resp)
}
