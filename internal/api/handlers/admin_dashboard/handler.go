package admin_dashboard

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
)

const msgInvalidShopID = "некорректный ID салона"

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

// Handle GET /api/v1/admin/dashboard
// Query params: shopId (опционально, по умолчанию первый салон по названию)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var selected *int64
	if raw := r.URL.Query().Get("shopId"); raw != "" {
		shopID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/dashboard - Invalid shop ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidShopID)
			return
		}
		selected = &shopID
	}

	result, err := h.service.Dashboard(r.Context(), selected)
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
