package hours

import "errors"

var (
	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("hours: shop not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("hours: staff not found")

	// ErrInvalidHours возвращается при некорректном дне недели или времени
	ErrInvalidHours = errors.New("hours: invalid working hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hours: internal error")
)
