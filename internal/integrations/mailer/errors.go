package mailer

import "errors"

var (
	// ErrDisabled возвращается, когда отправка писем не настроена
	ErrDisabled = errors.New("mailer: smtp is not configured")

	// ErrInvalidRecipient возвращается при пустом адресе получателя
	ErrInvalidRecipient = errors.New("mailer: invalid recipient")

	// ErrSend возвращается при ошибке отправки через SMTP
	ErrSend = errors.New("mailer: failed to send message")
)
