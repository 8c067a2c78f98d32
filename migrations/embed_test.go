package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsGooseMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		data, err := fs.ReadFile(FS, name)
		require.NoError(t, err)

		content := string(data)
		assert.True(t, strings.Contains(content, "-- +goose Up"), name)
		assert.True(t, strings.Contains(content, "-- +goose Down"), name)
	}
}

func TestFS_ActiveSlotIndex(t *testing.T) {
	data, err := fs.ReadFile(FS, "00001_init_schema.sql")
	require.NoError(t, err)

	assert.Contains(t, string(data), "uq_appointments_active_slot")
	assert.Contains(t, string(data), "WHERE status <> 'Ακυρωμένο'")
}
