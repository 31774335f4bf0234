package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bietkhonhungvandi212/pagesim/internal/replacement"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/codec"
	"github.com/bietkhonhungvandi212/pagesim/internal/timeline"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "1 2 3 4 1 2 5 1 2 3 4 5", config.ReferenceString)
	assert.Equal(t, "3", config.FrameCount)
	assert.Equal(t, "FIFO", config.Algorithm)
	assert.Equal(t, "NORMAL", config.Speed)
	assert.Equal(t, "none", config.Compression)
	assert.Equal(t, "info", config.LogLevel)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		target error
	}{
		{"EmptyReferenceString", func(c *Config) { c.ReferenceString = "   " }, util.ErrInvalidInput},
		{"ZeroFrames", func(c *Config) { c.FrameCount = "0" }, util.ErrInvalidCapacity},
		{"NegativeFrames", func(c *Config) { c.FrameCount = "-1" }, util.ErrInvalidCapacity},
		{"NonNumericFrames", func(c *Config) { c.FrameCount = "three" }, util.ErrInvalidCapacity},
		{"UnknownAlgorithm", func(c *Config) { c.Algorithm = "CLOCK" }, util.ErrUnknownPolicy},
		{"UnknownCompression", func(c *Config) { c.Compression = "zstd" }, util.ErrUnsupportedCompression},
		{"BadSpeed", func(c *Config) { c.Speed = "warp" }, nil},
		{"EmptyDataDirectory", func(c *Config) { c.DataDirectory = "" }, nil},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "verbose" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestParse(t *testing.T) {
	config := DefaultConfig()
	config.Algorithm = "opt"
	config.FrameCount = " 4 "
	config.Speed = "fast"
	config.Compression = "lz4"

	in, err := config.Parse()
	require.NoError(t, err)
	assert.Len(t, in.Sequence, 12)
	assert.Equal(t, 4, in.Capacity)
	assert.Equal(t, replacement.OPTIMAL, in.Policy)
	assert.Equal(t, timeline.SpeedFast, in.Speed)
	assert.Equal(t, codec.CompressionLZ4, in.Compression)

	config.FrameCount = "0"
	_, err = config.Parse()
	assert.ErrorIs(t, err, util.ErrInvalidCapacity)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir, cleanup := util.CreateTempDir(t)
	defer cleanup()

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"algorithm": "LRU", "frame_count": "4"}`), 0o644))

		config, err := LoadConfigFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "LRU", config.Algorithm)
		assert.Equal(t, "4", config.FrameCount)
		assert.Equal(t, DefaultConfig().ReferenceString, config.ReferenceString)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"frame_count": "0"}`), 0o644))

		_, err := LoadConfigFromFile(path)
		assert.ErrorIs(t, err, util.ErrInvalidCapacity)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		path := filepath.Join(dir, "malformed.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

		_, err := LoadConfigFromFile(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadConfigFromFile(filepath.Join(dir, "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("SaveRoundTrip", func(t *testing.T) {
		path := filepath.Join(dir, "saved.json")
		config := DefaultConfig()
		config.ReferenceString = "a b c a"
		config.Compression = "snappy"
		require.NoError(t, config.SaveToFile(path))

		loaded, err := LoadConfigFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, config, loaded)
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PAGESIM_REFERENCE_STRING", "7 0 1 2 0")
	t.Setenv("PAGESIM_FRAME_COUNT", "2")
	t.Setenv("PAGESIM_ALGORITHM", "lru")
	t.Setenv("PAGESIM_SPEED", "SLOW")
	t.Setenv("PAGESIM_DATA_DIRECTORY", "/tmp/pagesim")
	t.Setenv("PAGESIM_COMPRESSION", "snappy")
	t.Setenv("PAGESIM_LOG_LEVEL", "debug")

	config := LoadConfigFromEnv()
	assert.Equal(t, "7 0 1 2 0", config.ReferenceString)
	assert.Equal(t, "2", config.FrameCount)
	assert.Equal(t, "lru", config.Algorithm)
	assert.Equal(t, "SLOW", config.Speed)
	assert.Equal(t, "/tmp/pagesim", config.DataDirectory)
	assert.Equal(t, "snappy", config.Compression)
	assert.Equal(t, "debug", config.LogLevel)
	assert.NoError(t, config.Validate())
}

func TestClone(t *testing.T) {
	config := DefaultConfig()
	clone := config.Clone()
	clone.Algorithm = "LRU"

	assert.Equal(t, "FIFO", config.Algorithm)
	assert.Equal(t, "LRU", clone.Algorithm)
}
