package leads

import "errors"

var (
	// ErrInvalidPlan возвращается при неизвестном тарифе
	ErrInvalidPlan = errors.New("leads: invalid plan")

	// ErrMissingContact возвращается, когда не указан email или телефон
	ErrMissingContact = errors.New("leads: email and phone are required")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("leads: invalid email")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("leads: internal error")
)
