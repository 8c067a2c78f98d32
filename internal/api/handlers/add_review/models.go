package add_review

import (
	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

// AddReviewRequest HTTP request model
type AddReviewRequest struct {
	Name    string `json:"name"`
	Rating  *int   `json:"rating,omitempty"`
	Comment string `json:"comment"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddReviewRequest) ToServiceRequest(shopID int64) *models.AddReviewRequest {
	return &models.AddReviewRequest{
		ShopID:  shopID,
		Name:    r.Name,
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
