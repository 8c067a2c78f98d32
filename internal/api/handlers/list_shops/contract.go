package list_shops

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

type ShopService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ShopListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
