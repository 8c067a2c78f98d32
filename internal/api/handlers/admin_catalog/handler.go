package admin_catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/admin"
	"github.com/m04kA/SMC-HairBooking/internal/service/admin/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingShop        = "салон обязателен"
	msgMissingName        = "имя обязательно"
	msgShopNotFound       = "салон не найден"
)

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

// CreateStaff POST /api/v1/admin/staff
func (h *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	staff, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/staff", req.ShopID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, staff)
}

// CreateService POST /api/v1/admin/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/services", req.ShopID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, service)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, shopID int64, err error) {
	switch {
	case errors.Is(err, admin.ErrMissingShop):
		handlers.RespondBadRequest(w, msgMissingShop)

	case errors.Is(err, admin.ErrMissingName):
		handlers.RespondBadRequest(w, msgMissingName)

	case errors.Is(err, admin.ErrShopNotFound):
		h.logger.Warn("%s - Shop not found: shop_id=%d", op, shopID)
		handlers.RespondNotFound(w, msgShopNotFound)

	default:
		h.logger.Error("%s - Failed: shop_id=%d, error=%v", op, shopID, err)
		handlers.RespondInternalError(w)
	}
}
