package database

import (
	"path/filepath"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(path string) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   path,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		QueryTimeout: 2 * time.Second,
	}
}

func TestConnectSQLiteMigratesSchema(t *testing.T) {
	db, err := Connect(sqliteConfig(filepath.Join(t.TempDir(), "catalog.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.NoError(t, db.HealthCheck())
	assert.Equal(t, 2*time.Second, db.GetQueryTimeout())

	migrator := db.Migrator()
	assert.True(t, migrator.HasTable(&models.Director{}))
	assert.True(t, migrator.HasTable(&models.Genre{}))
	assert.True(t, migrator.HasTable(&models.Movie{}))
	assert.True(t, migrator.HasColumn(&models.Movie{}, "director_id"))
	assert.True(t, migrator.HasColumn(&models.Movie{}, "genre_id"))
}

func TestConnectPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := Connect(sqliteConfig(path))
	require.NoError(t, err)
	name := "Villeneuve"
	require.NoError(t, db.Create(&models.Director{Name: &name}).Error)
	require.NoError(t, db.Close())

	reopened, err := Connect(sqliteConfig(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	var director models.Director
	require.NoError(t, reopened.First(&director).Error)
	require.NotNil(t, director.Name)
	assert.Equal(t, "Villeneuve", *director.Name)
}

func TestConnectUnsupportedDriver(t *testing.T) {
	_, err := Connect(config.DatabaseConfig{Driver: "oracle"})
	assert.EqualError(t, err, `unsupported database driver "oracle"`)
}

func TestHealthCheckAfterClose(t *testing.T) {
	db, err := Connect(sqliteConfig(":memory:"))
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Error(t, db.HealthCheck())
}
