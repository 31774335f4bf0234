package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bietkhonhungvandi212/pagesim/internal/reference"
	"github.com/bietkhonhungvandi212/pagesim/internal/replacement"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/codec"
	"github.com/bietkhonhungvandi212/pagesim/internal/timeline"
)

// Config holds the inputs of a run and where its results go
type Config struct {
	// Simulation inputs, kept as text the way a form supplies them
	ReferenceString string `json:"reference_string"` // Whitespace separated page references
	FrameCount      string `json:"frame_count"`      // Number of physical frames
	Algorithm       string `json:"algorithm"`        // FIFO, LRU or OPTIMAL

	// Playback
	Speed string `json:"speed"` // SLOW, NORMAL or FAST

	// Persistence
	DataDirectory string `json:"data_directory"` // Last run and exports
	Compression   string `json:"compression"`    // Export compression (none, snappy, lz4)

	LogLevel string `json:"log_level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ReferenceString: "1 2 3 4 1 2 5 1 2 3 4 5",
		FrameCount:      "3",
		Algorithm:       string(replacement.FIFO),
		Speed:           string(timeline.SpeedNormal),
		DataDirectory:   "./pagesim-data",
		Compression:     "none",
		LogLevel:        "info",
	}
}

// LoadConfigFromFile loads configuration from a JSON file over the defaults
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadConfigFromEnv applies PAGESIM_* variables over the defaults
func LoadConfigFromEnv() *Config {
	config := DefaultConfig()
	config.ApplyEnv()
	return config
}

// ApplyEnv overrides fields whose environment variable is set
func (c *Config) ApplyEnv() {
	overrides := map[string]*string{
		"PAGESIM_REFERENCE_STRING": &c.ReferenceString,
		"PAGESIM_FRAME_COUNT":      &c.FrameCount,
		"PAGESIM_ALGORITHM":        &c.Algorithm,
		"PAGESIM_SPEED":            &c.Speed,
		"PAGESIM_DATA_DIRECTORY":   &c.DataDirectory,
		"PAGESIM_COMPRESSION":      &c.Compression,
		"PAGESIM_LOG_LEVEL":        &c.LogLevel,
	}
	for key, field := range overrides {
		if val := os.Getenv(key); val != "" {
			*field = val
		}
	}
}

// SaveToFile saves the configuration to a JSON file
func (c *Config) SaveToFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects inputs a run would reject, before any run starts
func (c *Config) Validate() error {
	if _, err := reference.Parse(c.ReferenceString); err != nil {
		return err
	}

	if _, err := reference.ParseCapacity(c.FrameCount); err != nil {
		return err
	}

	if _, err := replacement.ParsePolicy(c.Algorithm); err != nil {
		return err
	}

	if _, err := timeline.ParseSpeed(c.Speed); err != nil {
		return err
	}

	if c.DataDirectory == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, err := codec.ParseCompression(c.Compression); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Inputs is the parsed form of a validated config
type Inputs struct {
	Sequence    reference.Sequence
	Capacity    int
	Policy      replacement.Policy
	Speed       timeline.Speed
	Compression codec.Compression
}

// Parse validates and converts the text fields
func (c *Config) Parse() (*Inputs, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	// Validate has already run every parser below
	seq, _ := reference.Parse(c.ReferenceString)
	capacity, _ := reference.ParseCapacity(c.FrameCount)
	policy, _ := replacement.ParsePolicy(c.Algorithm)
	speed, _ := timeline.ParseSpeed(c.Speed)
	compression, _ := codec.ParseCompression(c.Compression)

	return &Inputs{
		Sequence:    seq,
		Capacity:    capacity,
		Policy:      policy,
		Speed:       speed,
		Compression: compression,
	}, nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
