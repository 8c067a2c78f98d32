package create_booking

import "errors"

var (
	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("create_booking: shop not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена, неактивна или из другого салона
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrStaffNotFound возвращается, когда мастер не найден, неактивен или из другого салона
	ErrStaffNotFound = errors.New("create_booking: staff not found")

	// ErrMissingContact возвращается, когда не заполнены имя, телефон или email
	ErrMissingContact = errors.New("create_booking: name, phone and email are required")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("create_booking: invalid email")

	// ErrTermsNotAccepted возвращается, когда не приняты условия
	ErrTermsNotAccepted = errors.New("create_booking: terms must be accepted")

	// ErrSlotTaken возвращается, когда выбранное время успели занять
	ErrSlotTaken = errors.New("create_booking: slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
