package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)

	level, err = ParseLevel("warning")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestInitDisabled(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Init(Options{Enabled: false, Dir: dir}))
	L.Info("discarded")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestInitWritesDatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Init(Options{Enabled: true, Dir: dir, Level: slog.LevelDebug}))
	L.Debug("Heap::Grow", slog.Int("NewBreak", 100))
	L.Debug("Heap::Free", slog.Int("Index", 2))
	require.NoError(t, Close())

	contents, err := os.ReadFile(filepath.Join(dir, FileName(time.Now())))
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(contents), "\n"))
	require.Contains(t, string(contents), "msg=Heap::Grow NewBreak=100")
}

func TestInitRespectsLevel(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { _ = Close() })

	require.NoError(t, Init(Options{Enabled: true, Dir: dir, Level: slog.LevelWarn}))
	L.Info("skipped")
	L.Warn("kept")
	require.NoError(t, Close())

	contents, err := os.ReadFile(filepath.Join(dir, FileName(time.Now())))
	require.NoError(t, err)
	require.NotContains(t, string(contents), "skipped")
	require.Contains(t, string(contents), "kept")
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	old := FileName(now.AddDate(0, 0, -45))
	recent := FileName(now.AddDate(0, 0, -3))
	unrelated := "notes.log"
	for _, name := range []string{old, recent, unrelated} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	cleanOldLogs(dir, now)

	_, err := os.Stat(filepath.Join(dir, old))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, recent))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, unrelated))
	require.NoError(t, err)
}
