package session

import (
	"context"
	"time"
)

// Backend хранилище значений сессий с TTL
type Backend interface {
	// Get возвращает значение ключа; found=false, если ключа нет или он истёк
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
