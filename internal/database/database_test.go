package database

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrateAndSeedIsIdempotent(t *testing.T) {
	db, err := Open(sqlite.Open("file:seed?mode=memory&cache=shared"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))

	inserted, err := SeedCategories(db)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DefaultCategories)), inserted)

	inserted, err = SeedCategories(db)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultCategories)), count)
}

func TestPingReportsDriverFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	// gorm.Open pings once on open.
	mock.ExpectPing()
	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.EqualError(t, Ping(db), "connection refused")

	mock.ExpectPing()
	assert.NoError(t, Ping(db))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoggerSkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(log.New(&buf, "", 0))
	query := func() (string, int64) { return "SELECT * FROM users", 0 }

	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "connection reset")
}
