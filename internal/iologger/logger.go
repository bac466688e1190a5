// Package iologger sets up the default slog logger of gnsyn.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	gnsyn "github.com/gnames/gnsyn/pkg"
	"github.com/gnames/gnsyn/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "gnsyn.log"

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init replaces the default slog logger. With the "file" destination
// the log file in logDir is truncated. Init may be called again after
// the config is loaded, the previously opened log file is closed then.
func Init(logDir string, cfg config.LogConfig) error {
	mu.Lock()
	defer mu.Unlock()

	w, f, err := output(logDir, cfg.Destination)
	if err != nil {
		return err
	}
	if logFile != nil && logFile != f {
		logFile.Close()
	}
	logFile = f

	opts := &slog.HandlerOptions{Level: Level(cfg.Level)}
	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Format == "text" {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h).With("version", gnsyn.Version)
	slog.SetDefault(logger)
	return nil
}

// Close closes the log file if there is one.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func output(logDir, dest string) (io.Writer, *os.File, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil, nil
	case "file":
		path := filepath.Join(logDir, LogFile)
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, CreateLogFileError(path, err)
		}
		return f, f, nil
	}
	return os.Stderr, nil, nil
}

// Level converts a config level to slog.Level. Unknown levels mean info.
func Level(level string) slog.Level {
	var res slog.Level
	if err := res.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return res
}
