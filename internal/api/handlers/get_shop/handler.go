package get_shop

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/shops"
)

const (
	msgInvalidShopID = "некорректный ID салона"
	msgNotFound      = "салон не найден"
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

// Handle GET /api/v1/shops/{shopId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := handlers.PathID(r, "shopId")
	if err != nil {
		h.logger.Warn("GET /shops/{id} - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	detail, err := h.service.Detail(r.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, shops.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id} - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /shops/{id} - Failed to get shop: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, detail)
}
