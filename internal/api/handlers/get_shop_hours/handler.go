package get_shop_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/hours"
)

const (
	msgInvalidID = "некорректный ID салона"
	msgNotFound  = "салон не найден"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/shops/{shopId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "shopId")
	if err != nil {
		h.logger.Warn("GET /admin/shops/{id}/hours - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetShopHours(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrShopNotFound):
			h.logger.Warn("GET /admin/shops/{id}/hours - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/shops/{id}/hours - Failed to get hours: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
