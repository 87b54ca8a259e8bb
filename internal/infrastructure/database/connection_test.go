package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/socialdash/internal/shared/config"
	"github.com/orris-inc/socialdash/internal/shared/logger"
)

func TestOpenCreatesDirectoryAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dash.db")

	db, err := Open(&config.DatabaseConfig{Path: path, MaxOpenConns: 1}, logger.NewNop())
	require.NoError(t, err)
	assert.FileExists(t, path)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	require.NoError(t, Close(db))
	assert.NoError(t, Close(nil))
}

func TestGormWriterDoesNotPanic(t *testing.T) {
	w := gormWriter{log: logger.NewNop()}
	assert.NotPanics(t, func() {
		w.Printf("%s [error] %s", "file.go:1", "boom")
		w.Printf("SLOW SQL >= %v", "200ms")
		w.Printf("%s", "select 1")
	})
}
