package update_shop_hours

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/hours/models"
)

type HoursService interface {
	SaveShopHours(ctx context.Context, shopID int64, days []models.DayHours) (*models.ShopHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
