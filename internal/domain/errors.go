package domain

import "errors"

var (
	// ErrUnknownStep возвращается при неизвестном шаге мастера записи
	ErrUnknownStep = errors.New("domain: unknown booking step")
)
