package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

func TestStore_Draft(t *testing.T) {
	_, client := newMiniredis(t)
	store := NewStore(NewRedisBackend(client), 2*time.Hour)
	ctx := context.Background()

	draft, err := store.GetDraft(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, draft)

	saved := &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2, StaffID: 3, StartHM: "10:00", EndHM: "10:30"}
	require.NoError(t, store.SaveDraft(ctx, "sid", saved))

	draft, err = store.GetDraft(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, saved, draft)

	require.NoError(t, store.ClearDraft(ctx, "sid"))
	draft, err = store.GetDraft(ctx, "sid")
	require.NoError(t, err)
	assert.Nil(t, draft)
}

func TestStore_DraftKeyAndTTL(t *testing.T) {
	s, client := newMiniredis(t)
	store := NewStore(NewRedisBackend(client), 2*time.Hour)
	ctx := context.Background()

	require.NoError(t, store.SaveDraft(ctx, "abc", &domain.BookingDraft{ShopID: 5}))

	assert.True(t, s.Exists("booking:abc"))
	assert.Equal(t, 2*time.Hour, s.TTL("booking:abc"))
}

func TestStore_CorruptedDraft(t *testing.T) {
	backend := NewMemoryBackend()
	store := NewStore(backend, time.Hour)
	ctx := context.Background()

	require.NoError(t, backend.Set(ctx, "booking:bad", []byte("{not json"), time.Hour))

	_, err := store.GetDraft(ctx, "bad")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestStore_Admin(t *testing.T) {
	store := NewStore(NewMemoryBackend(), time.Hour)
	ctx := context.Background()

	isAdmin, err := store.IsAdmin(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	require.NoError(t, store.SetAdmin(ctx, "sid"))
	isAdmin, err = store.IsAdmin(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	require.NoError(t, store.ClearAdmin(ctx, "sid"))
	isAdmin, err = store.IsAdmin(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestStore_Rotate(t *testing.T) {
	store := NewStore(NewMemoryBackend(), time.Hour)
	ctx := context.Background()

	saved := &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01"}
	require.NoError(t, store.SaveDraft(ctx, "old", saved))
	require.NoError(t, store.SetAdmin(ctx, "old"))

	newID, err := store.Rotate(ctx, "old")
	require.NoError(t, err)
	assert.NotEqual(t, "old", newID)
	assert.Len(t, newID, 36)

	draft, err := store.GetDraft(ctx, newID)
	require.NoError(t, err)
	assert.Equal(t, saved, draft)

	draft, err = store.GetDraft(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, draft)

	isAdmin, err := store.IsAdmin(ctx, "old")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestStore_RotateWithoutDraft(t *testing.T) {
	store := NewStore(NewMemoryBackend(), time.Hour)
	ctx := context.Background()

	newID, err := store.Rotate(ctx, "empty")
	require.NoError(t, err)

	draft, err := store.GetDraft(ctx, newID)
	require.NoError(t, err)
	assert.Nil(t, draft)
}
