package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml"
	"github.com/vkngwrapper/heapviz/heap"
	"github.com/vkngwrapper/heapviz/internal/logger"
)

const (
	DefaultCapacity     = 4 * 1024
	DefaultMinGrowth    = 5
	DefaultBytesPerCell = 32
	DefaultLogLevel     = "debug"
)

// Config is the contents of a heapviz configuration file. Numeric settings left at zero take
// their defaults.
type Config struct {
	Heap    HeapConfig    `toml:"heap"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

type HeapConfig struct {
	// Capacity is the highest break sbrk may reach
	Capacity int `toml:"capacity"`
	// MinBlockSize is the smallest block a split may create
	MinBlockSize int `toml:"min_block_size"`
	// MinGrowth is the number of bytes a growth drag must exceed to be committed
	MinGrowth int `toml:"min_growth"`
}

type DisplayConfig struct {
	BytesPerCell int `toml:"bytes_per_cell"`
}

type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	Level   string `toml:"level"`
}

// Default returns the configuration used when no file is provided
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Heap.Capacity == 0 {
		c.Heap.Capacity = DefaultCapacity
	}
	if c.Heap.MinBlockSize == 0 {
		c.Heap.MinBlockSize = heap.DefaultMinBlockSize
	}
	if c.Heap.MinGrowth == 0 {
		c.Heap.MinGrowth = DefaultMinGrowth
	}
	if c.Display.BytesPerCell == 0 {
		c.Display.BytesPerCell = DefaultBytesPerCell
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Parse decodes TOML configuration data and fills in defaults
func Parse(data []byte) (Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "could not parse configuration")
	}

	c.applyDefaults()
	return c, c.Validate()
}

// Load reads the configuration file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read configuration file %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid configuration file %s", path)
	}
	return c, nil
}

// Validate rejects settings the heap or the display cannot work with
func (c Config) Validate() error {
	if c.Heap.Capacity < 0 {
		return errors.Newf("heap.capacity must be positive, but is %d", c.Heap.Capacity)
	}
	if c.Heap.MinBlockSize < 0 {
		return errors.Newf("heap.min_block_size must be positive, but is %d", c.Heap.MinBlockSize)
	}
	if c.Heap.MinBlockSize > c.Heap.Capacity {
		return errors.Newf("heap.min_block_size %d is larger than heap.capacity %d", c.Heap.MinBlockSize, c.Heap.Capacity)
	}
	if c.Heap.MinGrowth < 0 {
		return errors.Newf("heap.min_growth cannot be negative, but is %d", c.Heap.MinGrowth)
	}
	if c.Display.BytesPerCell < 0 {
		return errors.Newf("display.bytes_per_cell must be positive, but is %d", c.Display.BytesPerCell)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}
