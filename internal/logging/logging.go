// Package logging configures the application log file.
package logging

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
)

// Init routes slog output to a size-rotated log file. Terminal output stays
// reserved for user-facing messages.
func Init(path string) {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
}
