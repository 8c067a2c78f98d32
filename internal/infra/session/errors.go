package session

import "errors"

var (
	// ErrBackend возвращается при ошибке хранилища сессий
	ErrBackend = errors.New("session: backend error")

	// ErrDecode возвращается, если сохранённое значение не удалось разобрать
	ErrDecode = errors.New("session: failed to decode value")
)
