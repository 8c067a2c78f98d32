package list_shops

import (
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops
// Query params: q, where (или city), cat (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.service.List(r.Context(), &models.ListRequest{
		Query:    query.Get("q"),
		Where:    query.Get("where"),
		City:     query.Get("city"),
		Category: query.Get("cat"),
	})
	if err != nil {
		h.logger.Error("GET /shops - Failed to list shops: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
