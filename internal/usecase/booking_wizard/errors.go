package booking_wizard

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

var (
	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("booking_wizard: shop not found")

	// ErrInvalidDate возвращается, когда дата не является реальной календарной датой
	ErrInvalidDate = errors.New("booking_wizard: invalid date")

	// ErrInvalidService возвращается, когда услуга не найдена, неактивна или из другого салона
	ErrInvalidService = errors.New("booking_wizard: choose a service")

	// ErrInvalidStaff возвращается, когда мастер не найден, неактивен или из другого салона
	ErrInvalidStaff = errors.New("booking_wizard: choose a staff member")

	// ErrSlotUnavailable возвращается, когда выбранное время не входит в список свободных слотов
	ErrSlotUnavailable = errors.New("booking_wizard: choose an available time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)

// StepRedirectError шаг недоступен, пользователя нужно отправить на Step.
// Cause содержит причину (например, занятый слот при подтверждении).
type StepRedirectError struct {
	Step  domain.BookingStep
	Cause error
}

func (e *StepRedirectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("booking_wizard: redirect to %s: %v", e.Step, e.Cause)
	}
	return fmt.Sprintf("booking_wizard: redirect to %s", e.Step)
}

func (e *StepRedirectError) Unwrap() error {
	return e.Cause
}
