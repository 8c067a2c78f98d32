package shops

import "errors"

var (
	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("shops: shop not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shops: internal error")
)
