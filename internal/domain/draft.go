package domain

import "github.com/m04kA/SMC-HairBooking/pkg/types"

// BookingStep шаг мастера записи
type BookingStep string

const (
	StepDate    BookingStep = "date"
	StepService BookingStep = "service"
	StepStaff   BookingStep = "staff"
	StepTime    BookingStep = "time"
	StepConfirm BookingStep = "confirm"
)

// BookingSteps шаги в строгом порядке
var BookingSteps = []BookingStep{StepDate, StepService, StepStaff, StepTime, StepConfirm}

// ParseBookingStep проверяет имя шага
func ParseBookingStep(s string) (BookingStep, error) {
	for _, step := range BookingSteps {
		if string(step) == s {
			return step, nil
		}
	}
	return "", ErrUnknownStep
}

// BookingDraft черновик записи, накапливаемый по шагам мастера.
// Живёт в сессии пользователя и удаляется после подтверждения.
type BookingDraft struct {
	ShopID    int64            `json:"shop_id"`
	ApptDate  string           `json:"appt_date,omitempty"`
	ServiceID int64            `json:"service_id,omitempty"`
	StaffID   int64            `json:"staff_id,omitempty"`
	StartHM   types.TimeString `json:"start_hm,omitempty"`
	EndHM     types.TimeString `json:"end_hm,omitempty"`
}

// previous шаг, на который отправляется пользователь, если предусловие шага не выполнено
func (s BookingStep) previous() (BookingStep, bool) {
	for i, step := range BookingSteps {
		if step == s && i > 0 {
			return BookingSteps[i-1], true
		}
	}
	return "", false
}

// satisfies проверяет предусловие шага для салона shopID
func (d *BookingDraft) satisfies(step BookingStep, shopID int64) bool {
	if d == nil {
		return step == StepDate
	}
	if step != StepDate && d.ShopID != shopID {
		return false
	}

	switch step {
	case StepDate:
		return true
	case StepService:
		return d.ApptDate != ""
	case StepStaff:
		return d.ServiceID != 0
	case StepTime:
		return d.StaffID != 0
	case StepConfirm:
		return !d.StartHM.IsZero()
	default:
		return false
	}
}

// Resolve возвращает шаг, который можно показать вместо target.
// Если предусловие target не выполнено, пользователь отправляется на предыдущий
// шаг, и так далее до первого шага с выполненным предусловием.
func (d *BookingDraft) Resolve(target BookingStep, shopID int64) BookingStep {
	step := target
	for !d.satisfies(step, shopID) {
		prev, ok := step.previous()
		if !ok {
			return StepDate
		}
		step = prev
	}
	return step
}
