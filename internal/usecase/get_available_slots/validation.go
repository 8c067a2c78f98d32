package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-HairBooking/pkg/timegrid"
)

// validateRequest валидирует входные данные запроса и возвращает день недели даты
func validateRequest(req *Request) (int, error) {
	if req.StaffID <= 0 {
		return 0, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	weekday, err := timegrid.WeekdayOf(req.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return weekday, nil
}
