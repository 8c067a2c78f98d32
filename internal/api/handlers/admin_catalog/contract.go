package admin_catalog

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/admin/models"
	shopModels "github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

type AdminService interface {
	CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*shopModels.StaffResponse, error)
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*shopModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
