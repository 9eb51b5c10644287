package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// L is the process logger. It discards all output until Init enables logging, so nothing is
// ever written over the terminal interface.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var logFile io.Closer

const (
	logPrefix     = "heapviz-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

// Options configures logging
type Options struct {
	Enabled bool       // If false, all logging is discarded
	Dir     string     // Directory for log files. Default: ~/.heapviz/logs
	Level   slog.Level // Minimum level written
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Newf("unknown log level %q", name)
}

// DefaultDir returns the directory log files are written to when Options.Dir is empty
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not locate the home directory")
	}
	return filepath.Join(home, ".heapviz", "logs"), nil
}

// Init configures L. With logging enabled, output goes to a file named for the current date in
// opts.Dir, and log files older than the retention period are removed.
func Init(opts Options) error {
	if err := Close(); err != nil {
		return err
	}

	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logDir := opts.Dir
	if logDir == "" {
		var err error
		logDir, err = DefaultDir()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return errors.Wrapf(err, "could not create log directory %s", logDir)
	}

	cleanOldLogs(logDir, time.Now())

	filename := filepath.Join(logDir, FileName(time.Now()))
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "could not open log file %s", filename)
	}

	logFile = f
	L = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close releases the log file opened by Init, if any, and resets L to discard output
func Close() error {
	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil
	L = slog.New(slog.NewTextHandler(io.Discard, nil))
	return errors.Wrap(err, "could not close log file")
}

// FileName returns the name of the log file used on the provided day
func FileName(day time.Time) string {
	return logPrefix + day.Format(dateLayout) + logSuffix
}

func cleanOldLogs(logDir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}

		logDate, err := time.Parse(dateLayout, strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix))
		if err != nil {
			continue
		}

		if logDate.Before(cutoff) {
			_ = os.Remove(filepath.Join(logDir, name))
		}
	}
}
