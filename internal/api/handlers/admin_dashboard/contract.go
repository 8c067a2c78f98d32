package admin_dashboard

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/admin/models"
)

type AdminService interface {
	Dashboard(ctx context.Context, selectedShopID *int64) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
