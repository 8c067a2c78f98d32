package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Config параметры SMTP
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func (c Config) enabled() bool {
	return c.Host != "" && c.User != "" && c.Password != "" && c.From != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Client отправляет письма через SMTP.
// Если SMTP не настроен, клиент работает в выключенном режиме и ничего не отправляет.
type Client struct {
	cfg  Config
	auth smtp.Auth
	send sendFunc
	log  Logger
}

// NewClient создает клиент SMTP
func NewClient(cfg Config, log Logger) *Client {
	c := &Client{
		cfg:  cfg,
		send: smtp.SendMail,
		log:  log,
	}
	if cfg.enabled() {
		c.auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return c
}

// Enabled возвращает true, если SMTP настроен
func (c *Client) Enabled() bool {
	return c.cfg.enabled()
}

// SendBookingConfirmation отправляет письмо-подтверждение записи.
// В выключенном режиме возвращает ErrDisabled без попытки отправки.
func (c *Client) SendBookingConfirmation(ctx context.Context, msg BookingConfirmation) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	to := strings.TrimSpace(msg.To)
	if to == "" {
		return ErrInvalidRecipient
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	raw := buildMessage(c.cfg.From, to, BookingSubject, msg.Body())

	// smtp.SendMail сам включает STARTTLS, если сервер его поддерживает
	if err := c.send(addr, c.auth, c.cfg.From, []string{to}, []byte(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	c.log.Info("Booking confirmation sent to %s", to)
	return nil
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		mime.QEncoding.Encode("utf-8", subject),
		body,
	)
}
