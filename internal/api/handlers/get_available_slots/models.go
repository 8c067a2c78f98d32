package get_available_slots

import (
	"github.com/m04kA/SMC-HairBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StaffID         int64    `json:"staffId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		StaffID:         resp.StaffID,
		Date:            resp.Date,
		DurationMinutes: domain.SlotDurationMinutes,
		Slots:           slots,
	}
}
