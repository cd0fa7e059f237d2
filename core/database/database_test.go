package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "tracker",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.Equal(t, "sqlite", db.Dialector.Name())
		assert.NoError(t, Close(db))
	})
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_busy_timeout=5000", sqliteDSN("", 5))
	assert.Equal(t, "tracker.db?_busy_timeout=30000", sqliteDSN("tracker.db", 30))
	assert.Equal(t, "file:t.db?cache=shared&_busy_timeout=1000", sqliteDSN("file:t.db?cache=shared", 1))
}

func TestConfig_IsValidDriver(t *testing.T) {
	assert.True(t, Config{Driver: DriverSQLite}.IsValidDriver())
	assert.True(t, Config{Driver: DriverMySQL}.IsValidDriver())
	assert.False(t, Config{Driver: ""}.IsValidDriver())
}
