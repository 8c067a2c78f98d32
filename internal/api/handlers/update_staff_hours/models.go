package update_staff_hours

import (
	"github.com/m04kA/SMC-HairBooking/internal/service/hours/models"
)

// UpdateHoursRequest HTTP request model. Дни без начала или конца считаются выходными.
type UpdateHoursRequest struct {
	Hours []models.DayHours `json:"hours"`
}
