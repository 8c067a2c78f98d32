package admin_shops

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/admin"
	"github.com/m04kA/SMC-HairBooking/internal/service/admin/models"
)

const (
	msgInvalidShopID      = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingName        = "название обязательно"
	msgNotFound           = "салон не найден"
)

// UpdateCategoryRequest HTTP request model
type UpdateCategoryRequest struct {
	Category string `json:"category"`
}

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/shops
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateShopRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/shops - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	shop, err := h.service.CreateShop(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/shops", 0, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, shop)
}

// UpdateCategory PUT /api/v1/admin/shops/{shopId}/category
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	shopID, ok := h.shopID(w, r, "PUT /admin/shops/{id}/category")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/shops/{id}/category - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	shop, err := h.service.UpdateCategory(r.Context(), shopID, req.Category)
	if err != nil {
		h.respondError(w, "PUT /admin/shops/{id}/category", shopID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, shop)
}

// Toggle POST /api/v1/admin/shops/{shopId}/toggle
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	shopID, ok := h.shopID(w, r, "POST /admin/shops/{id}/toggle")
	if !ok {
		return
	}

	result, err := h.service.ToggleOpen(r.Context(), shopID)
	if err != nil {
		h.respondError(w, "POST /admin/shops/{id}/toggle", shopID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/shops/{shopId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	shopID, ok := h.shopID(w, r, "DELETE /admin/shops/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteShop(r.Context(), shopID); err != nil {
		h.respondError(w, "DELETE /admin/shops/{id}", shopID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) shopID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	shopID, err := handlers.PathID(r, "shopId")
	if err != nil {
		h.logger.Warn("%s - Invalid shop ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return 0, false
	}
	return shopID, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, shopID int64, err error) {
	switch {
	case errors.Is(err, admin.ErrMissingName):
		handlers.RespondBadRequest(w, msgMissingName)

	case errors.Is(err, admin.ErrShopNotFound):
		h.logger.Warn("%s - Shop not found: shop_id=%d", op, shopID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: shop_id=%d, error=%v", op, shopID, err)
		handlers.RespondInternalError(w)
	}
}
