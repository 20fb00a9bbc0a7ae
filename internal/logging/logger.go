package logging

import (
	"io"
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	slog.SetDefault(slog.New(NewJSONHandler(os.Stdout)))
}

func NewJSONHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}

// Persist switches the global logger to stdout plus a PGHandler that
// stores ERROR+ records. Callers must Stop the returned handler on
// shutdown so buffered records are flushed.
func Persist(db *gorm.DB) *PGHandler {
	pg := NewPGHandler(db, DefaultFlushInterval)
	slog.SetDefault(slog.New(NewMultiHandler(NewJSONHandler(os.Stdout), pg)))
	return pg
}
