package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.SystemLog{}))
	return db
}

func TestMultiHandlerFansOut(t *testing.T) {
	var info, errOnly bytes.Buffer
	logger := slog.New(NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errOnly, &slog.HandlerOptions{Level: slog.LevelError}),
	)).With("request_id", "abc")

	logger.Info("listing products")
	logger.Error("query failed")

	assert.Equal(t, 2, bytes.Count(info.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(errOnly.Bytes(), []byte("\n")))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(errOnly.Bytes(), &line))
	assert.Equal(t, "query failed", line["msg"])
	assert.Equal(t, "abc", line["request_id"])
}

func TestPGHandlerPersistsErrors(t *testing.T) {
	db := newTestDB(t)
	pg := NewPGHandler(db, time.Hour)

	logger := slog.New(pg).With("request_id", "req-1")
	logger.Info("ignored")
	logger.Error("seller create failed",
		"error", errors.New("boom"),
		"user_id", "u-1",
		"path", "/api/v1/sellers",
	)
	pg.Stop()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "seller create failed", entry.Message)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "boom", entry.Error)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "u-1", *entry.UserID)
	assert.JSONEq(t, `{"path":"/api/v1/sellers"}`, string(entry.Extra))
}

func TestDeleteOlderThan(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	for _, ts := range []time.Time{now.AddDate(0, 0, -40), now.AddDate(0, 0, -31), now.AddDate(0, 0, -1)} {
		require.NoError(t, db.Create(&models.SystemLog{
			ID: uuid.Must(uuid.NewV7()), Timestamp: ts, Level: "ERROR", Message: "old",
		}).Error)
	}

	deleted, err := DeleteOlderThan(db, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var remaining int64
	require.NoError(t, db.Model(&models.SystemLog{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)
}
