package add_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/service/shops"
)

const (
	msgInvalidShopID      = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "салон не найден"
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

// Handle POST /api/v1/shops/{shopId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shopID, err := handlers.PathID(r, "shopId")
	if err != nil {
		h.logger.Warn("POST /shops/{id}/reviews - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	var req AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /shops/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.AddReview(r.Context(), req.ToServiceRequest(shopID))
	if err != nil {
		switch {
		case errors.Is(err, shops.ErrShopNotFound):
			h.logger.Warn("POST /shops/{id}/reviews - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /shops/{id}/reviews - Failed to add review: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /shops/{id}/reviews - Review added: shop_id=%d, review_id=%d, rating=%d",
		shopID, review.ID, review.Rating)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
