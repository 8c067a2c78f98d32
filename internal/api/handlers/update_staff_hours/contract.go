package update_staff_hours

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/service/hours/models"
)

type HoursService interface {
	SaveStaffHours(ctx context.Context, staffID int64, days []models.DayHours) (*models.StaffHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
