package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// OpenLog returns a logger writing to path at the named level. The terminal
// belongs to the dashboard, so nothing is written to stderr. An empty path
// discards output.
func OpenLog(path, level string) (*log.Logger, func(), error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	logger.SetLevel(parseLevel(level))

	if strings.TrimSpace(path) == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, func() { _ = file.Close() }, nil
}

// parseLevel falls back to info for unknown names.
func parseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
