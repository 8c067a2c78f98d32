package session

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultRecoveryInterval через сколько после сбоя снова пробовать основное хранилище
const DefaultRecoveryInterval = time.Minute

// FailoverBackend пишет в основное хранилище и переключается на резервное при ошибках.
// Спустя recoveryInterval после сбоя основное хранилище пробуется снова.
type FailoverBackend struct {
	primary          Backend
	fallback         Backend
	logger           Logger
	recoveryInterval time.Duration

	isDown    atomic.Bool
	lastCheck atomic.Int64 // unix nano
	now       func() time.Time
}

func NewFailoverBackend(primary, fallback Backend, logger Logger) *FailoverBackend {
	return &FailoverBackend{
		primary:          primary,
		fallback:         fallback,
		logger:           logger,
		recoveryInterval: DefaultRecoveryInterval,
		now:              time.Now,
	}
}

// usePrimary решает, идти ли в основное хранилище
func (f *FailoverBackend) usePrimary() bool {
	if !f.isDown.Load() {
		return true
	}
	last := time.Unix(0, f.lastCheck.Load())
	return f.now().Sub(last) > f.recoveryInterval
}

func (f *FailoverBackend) markDown(op string, err error) {
	if !f.isDown.Swap(true) {
		f.logger.Error("Primary session backend failed on %s, falling back to memory: %v", op, err)
	}
	f.lastCheck.Store(f.now().UnixNano())
}

func (f *FailoverBackend) markUp() {
	if f.isDown.Swap(false) {
		f.logger.Warn("Primary session backend recovered")
	}
}

func (f *FailoverBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.usePrimary() {
		val, found, err := f.primary.Get(ctx, key)
		if err == nil {
			f.markUp()
			return val, found, nil
		}
		f.markDown("get", err)
	}
	return f.fallback.Get(ctx, key)
}

func (f *FailoverBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.usePrimary() {
		err := f.primary.Set(ctx, key, value, ttl)
		if err == nil {
			f.markUp()
			return nil
		}
		f.markDown("set", err)
	}
	return f.fallback.Set(ctx, key, value, ttl)
}

func (f *FailoverBackend) Delete(ctx context.Context, key string) error {
	if f.usePrimary() {
		err := f.primary.Delete(ctx, key)
		if err == nil {
			f.markUp()
			return nil
		}
		f.markDown("delete", err)
	}
	return f.fallback.Delete(ctx, key)
}
