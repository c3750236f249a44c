package handler

import (
	"net/http"

	"millet-market/internal/middleware"
	"millet-market/internal/model"
	"millet-market/internal/service"
	"millet-market/internal/upload"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// maxUploadMemory bounds the in-memory portion of a parsed multipart form.
const maxUploadMemory = 32 << 20 // 32 MB

// ProductHandler handles inventory-related HTTP requests.
type ProductHandler struct {
	service  service.ProductService
	uploader upload.Uploader
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, uploader upload.Uploader, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		uploader: uploader,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// productInput reads the writable product fields and the optional image file
// from the multipart form. The file metadata is request-scoped; nothing is
// shared across invocations. Returns false when the response has been written.
func (h *ProductHandler) productInput(w http.ResponseWriter, r *http.Request) (*model.ProductInput, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && err != http.ErrNotMultipart {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid form data", h.logger)
		return nil, false
	}

	input := &model.ProductInput{
		Name:        r.FormValue("name"),
		SKU:         r.FormValue("sku"),
		Category:    r.FormValue("category"),
		Quantity:    r.FormValue("quantity"),
		PackSize:    r.FormValue("packSize"),
		Unit:        r.FormValue("unit"),
		Price:       r.FormValue("price"),
		Discount:    r.FormValue("discount"),
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return input, true
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid image upload", h.logger)
		return nil, false
	}
	defer file.Close()

	result, err := h.uploader.Upload(r.Context(), file, upload.FileInfo{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("file", header.Filename).Msg("image upload failed")
		writeServiceError(w, model.ErrImageUploadFailed, h.logger)
		return nil, false
	}

	input.Image = &model.Image{
		FileName: header.Filename,
		FilePath: result.SecureURL,
		FileType: header.Header.Get("Content-Type"),
		FileSize: upload.FormatFileSize(header.Size, 2),
	}

	return input, true
}

// productID extracts and validates the {id} path variable. A malformed id is
// indistinguishable from a nonexistent product.
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, model.ErrProductNotFound, h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	input, ok := h.productInput(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), userID, input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// List handles GET /api/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	products, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.Get(r.Context(), userID, productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Update handles PATCH /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	input, ok := h.productInput(w, r)
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), userID, productID, input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.UpdateProductResponse{
		Message: "Updated Product",
		Product: *product,
	})
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		writeServiceError(w, model.ErrNotAuthenticated, h.logger)
		return
	}

	productID, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.Delete(r.Context(), userID, productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteProductResponse{
		Message: "Product deleted successfully",
		Product: *product,
	})
}
