package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	responder
}

// NewProductHandler creates a new product handler. devMode exposes internal
// error text in 500 responses.
func NewProductHandler(service service.ProductService, devMode bool, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		responder: responder{
			logger:  logger.With().Str("handler", "product").Logger(),
			devMode: devMode,
		},
	}
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, r, http.StatusBadRequest, model.ErrorResponse{
			Message: invalidBodyMessage(err),
			Error:   model.ErrCodeInvalidJSON,
		})
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			h.writeError(w, r, http.StatusBadRequest, model.ErrorResponse{
				Message: "Validation failed",
				Error:   model.ErrCodeValidationFailed,
				Errors:  validationErr.Violations,
			})
			return
		}
		h.writeServerError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, model.ErrorResponse{
			Message: model.ErrMalformedID.Message,
			Error:   model.ErrMalformedID.Code,
		})
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			h.writeError(w, r, http.StatusNotFound, model.ErrorResponse{
				Message: fmt.Sprintf("Product with ID %d not found", id),
				Error:   model.ErrCodeProductNotFound,
			})
			return
		}
		h.writeServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func invalidBodyMessage(err error) string {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Sprintf("request body must not exceed %d bytes", maxBytesErr.Limit)
	}
	return "invalid request body"
}
