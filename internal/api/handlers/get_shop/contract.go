package get_shop

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

type ShopService interface {
	Detail(ctx context.Context, shopID int64) (*models.ShopDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
