package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/digital-product-store/product/internal/repository"
)

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, errCode, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// writeValidationError reports field-level detail for a request body that
// failed schema validation.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}

	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, ErrorResponse{
		Error:   "validation_failed",
		Message: "request body failed validation",
		Fields:  fields,
	})
}

// handleServiceError maps service and repository errors to status codes.
// Anything unrecognized is a generic server error.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrBookNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", "book not found")
	case errors.Is(err, repository.ErrUploadNotFound):
		writeError(w, r, http.StatusUnprocessableEntity, "upload_not_found", "referenced upload does not exist")
	default:
		slog.Error("request failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
