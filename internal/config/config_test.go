package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/heapviz/internal/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()

	require.Equal(t, config.Config{
		Heap: config.HeapConfig{
			Capacity:     4096,
			MinBlockSize: 6,
			MinGrowth:    5,
		},
		Display: config.DisplayConfig{BytesPerCell: 32},
		Log:     config.LogConfig{Level: "debug"},
	}, c)
	require.NoError(t, c.Validate())
}

func TestParse(t *testing.T) {
	c, err := config.Parse([]byte(`
[heap]
capacity = 1024
min_growth = 16

[display]
bytes_per_cell = 8

[log]
enabled = true
dir = "/tmp/heapviz"
level = "info"
`))
	require.NoError(t, err)

	want := config.Config{
		Heap: config.HeapConfig{
			Capacity:     1024,
			MinBlockSize: 6,
			MinGrowth:    16,
		},
		Display: config.DisplayConfig{BytesPerCell: 8},
		Log: config.LogConfig{
			Enabled: true,
			Dir:     "/tmp/heapviz",
			Level:   "info",
		},
	}
	require.Empty(t, cmp.Diff(want, c))
}

func TestParseEmpty(t *testing.T) {
	c, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	for name, data := range map[string]string{
		"negative capacity":   "[heap]\ncapacity = -1\n",
		"block over capacity": "[heap]\ncapacity = 10\nmin_block_size = 11\n",
		"negative growth":     "[heap]\nmin_growth = -3\n",
		"negative scale":      "[display]\nbytes_per_cell = -8\n",
		"unknown level":       "[log]\nlevel = \"loud\"\n",
		"malformed":           "[heap\ncapacity = 1\n",
	} {
		_, err := config.Parse([]byte(data))
		require.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heapviz.toml")
	require.NoError(t, os.WriteFile(path, []byte("[heap]\ncapacity = 2048\n"), 0644))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2048, c.Heap.Capacity)

	c, err = config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
