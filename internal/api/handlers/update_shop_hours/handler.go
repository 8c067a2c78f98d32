package update_shop_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/hours"
)

const (
	msgInvalidID          = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "салон не найден"
	msgInvalidHours       = "некорректные часы работы, ожидается HH:MM"
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

// Handle PUT /api/v1/admin/shops/{shopId}/hours
// Заменяет расписание целиком.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "shopId")
	if err != nil {
		h.logger.Warn("PUT /admin/shops/{id}/hours - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/shops/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveShopHours(r.Context(), id, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrShopNotFound):
			h.logger.Warn("PUT /admin/shops/{id}/hours - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, hours.ErrInvalidHours):
			h.logger.Warn("PUT /admin/shops/{id}/hours - Invalid hours: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /admin/shops/{id}/hours - Failed to save hours: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/shops/{id}/hours - Hours saved: id=%d, days=%d", id, len(result.Hours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
