package shop

import "errors"

var (
	// ErrShopNotFound возвращается, когда салон не найден
	ErrShopNotFound = errors.New("shop.repository: shop not found")

	// ErrHoursNotFound возвращается, когда у салона нет интервала на день недели
	ErrHoursNotFound = errors.New("shop.repository: working hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shop.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shop.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shop.repository: failed to scan row")
)
