package admin_shops

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/admin/models"
	shopModels "github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

type AdminService interface {
	CreateShop(ctx context.Context, req *models.CreateShopRequest) (*shopModels.ShopResponse, error)
	UpdateCategory(ctx context.Context, shopID int64, category string) (*shopModels.ShopResponse, error)
	ToggleOpen(ctx context.Context, shopID int64) (*models.ToggleResponse, error)
	DeleteShop(ctx context.Context, shopID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
