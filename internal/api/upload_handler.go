package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/digital-product-store/product/internal/service"
)

const multipartMemoryLimit = 32 << 20

// UploadHandler handles HTTP requests for file uploads
type UploadHandler struct {
	uploadService  *service.UploadService
	maxUploadBytes int64
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService *service.UploadService, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{
		uploadService:  uploadService,
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadResponse is the response body for a completed upload
type UploadResponse struct {
	UploadID string `json:"upload_id"`
	ObjectID string `json:"object_id"`
}

// UploadFile accepts a multipart file, stores the blob and records the
// upload row linking to it.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		slog.Error("failed to parse multipart form", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid_form", "invalid multipart form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "file_required", "file is required (field: file)")
		return
	}
	defer file.Close()

	upload, err := h.uploadService.CreateUpload(r.Context(), header.Filename, file)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, UploadResponse{
		UploadID: upload.ID.String(),
		ObjectID: upload.ObjectID.String(),
	})
}
