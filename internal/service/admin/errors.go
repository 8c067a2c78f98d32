package admin

import "errors"

var (
	// ErrInvalidPassword возвращается при неверном пароле администратора
	ErrInvalidPassword = errors.New("admin: invalid password")

	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("admin: shop not found")

	// ErrMissingName возвращается, когда не указано название
	ErrMissingName = errors.New("admin: name is required")

	// ErrMissingShop возвращается, когда не указан салон
	ErrMissingShop = errors.New("admin: shop is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admin: internal error")
)
