package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairBooking/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (f *fakeTx) Commit() error                                                    { f.committed = true; return nil }
func (f *fakeTx) Rollback() error                                                  { f.rolledBack = true; return nil }

type fakeBeginner struct {
	tx    *fakeTx
	opts  *sql.TxOptions
	calls int
	err   error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.calls++
	b.opts = opts
	if b.err != nil {
		return nil, b.err
	}
	b.tx = &fakeTx{}
	return b.tx, nil
}

func TestTransactionManager_DoSerializable(t *testing.T) {
	t.Run("commit on success", func(t *testing.T) {
		b := &fakeBeginner{}
		m := NewTransactionManager(b)

		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			assert.True(t, dbmetrics.IsInTransaction(ctx))
			return nil
		})

		require.NoError(t, err)
		assert.True(t, b.tx.committed)
		assert.False(t, b.tx.rolledBack)
		assert.Equal(t, sql.LevelSerializable, b.opts.Isolation)
	})

	t.Run("rollback on error", func(t *testing.T) {
		b := &fakeBeginner{}
		m := NewTransactionManager(b)
		boom := errors.New("boom")

		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.True(t, b.tx.rolledBack)
		assert.False(t, b.tx.committed)
	})

	t.Run("begin failure", func(t *testing.T) {
		b := &fakeBeginner{err: errors.New("no conn")}
		m := NewTransactionManager(b)

		err := m.Do(context.Background(), func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ErrTransaction)
	})

	t.Run("nested call reuses transaction", func(t *testing.T) {
		b := &fakeBeginner{}
		m := NewTransactionManager(b)

		err := m.Do(context.Background(), func(ctx context.Context) error {
			return m.DoSerializable(ctx, func(ctx context.Context) error { return nil })
		})

		require.NoError(t, err)
		assert.Equal(t, 1, b.calls)
	})
}
