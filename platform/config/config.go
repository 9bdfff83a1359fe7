// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// APIConfig provides settings for the remote booking API client.
type APIConfig interface {
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetLookupRatePerSecond() float64
	GetLookupBurst() int
}

// SessionConfig provides settings for the local session/token store.
type SessionConfig interface {
	GetTokenPath() string
}

// AutocompleteConfig provides settings for the address autocomplete coordinator.
type AutocompleteConfig interface {
	GetDebounceInterval() time.Duration
	GetMinQueryLength() int
}

// AudioConfig provides settings for microphone capture and playback.
type AudioConfig interface {
	GetFFMPEGCommand() string
	GetFFPlayCommand() string
	GetAudioInputFormat() string
	GetAudioInputDevice() string
	GetRecordingDir() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                 string
	APIBaseURL          string
	APITimeout          time.Duration
	LookupRatePerSecond float64
	LookupBurst         int
	TokenPath           string
	DebounceInterval    time.Duration
	MinQueryLength      int
	FFMPEGCommand       string
	FFPlayCommand       string
	AudioInputFormat    string
	AudioInputDevice    string
	RecordingDir        string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// APIConfig implementation
func (c *Config) GetAPIBaseURL() string            { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration     { return c.APITimeout }
func (c *Config) GetLookupRatePerSecond() float64  { return c.LookupRatePerSecond }
func (c *Config) GetLookupBurst() int              { return c.LookupBurst }

// SessionConfig implementation
func (c *Config) GetTokenPath() string { return c.TokenPath }

// AutocompleteConfig implementation
func (c *Config) GetDebounceInterval() time.Duration { return c.DebounceInterval }
func (c *Config) GetMinQueryLength() int             { return c.MinQueryLength }

// AudioConfig implementation
func (c *Config) GetFFMPEGCommand() string    { return c.FFMPEGCommand }
func (c *Config) GetFFPlayCommand() string    { return c.FFPlayCommand }
func (c *Config) GetAudioInputFormat() string { return c.AudioInputFormat }
func (c *Config) GetAudioInputDevice() string { return c.AudioInputDevice }
func (c *Config) GetRecordingDir() string     { return c.RecordingDir }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		APIBaseURL:          getEnv("API_BASE_URL", "https://www.api.blueaceindia.com/api/v1"),
		APITimeout:          mustDuration(getEnv("API_TIMEOUT", "30s")),
		LookupRatePerSecond: mustFloat(getEnv("LOOKUP_RATE_PER_SECOND", "2")),
		LookupBurst:         mustInt(getEnv("LOOKUP_BURST", "3")),
		TokenPath:           getEnv("TOKEN_PATH", ""),
		DebounceInterval:    mustDuration(getEnv("AUTOCOMPLETE_DEBOUNCE", "300ms")),
		MinQueryLength:      mustInt(getEnv("AUTOCOMPLETE_MIN_QUERY", "3")),
		FFMPEGCommand:       getEnv("FFMPEG_COMMAND", "ffmpeg"),
		FFPlayCommand:       getEnv("FFPLAY_COMMAND", "ffplay"),
		AudioInputFormat:    getEnv("AUDIO_INPUT_FORMAT", "pulse"),
		AudioInputDevice:    getEnv("AUDIO_INPUT_DEVICE", "default"),
		RecordingDir:        getEnv("RECORDING_DIR", ""),
	}

	if cfg.TokenPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.TokenPath = filepath.Join(configDir, "blueace", "token")
	}

	if cfg.RecordingDir == "" {
		cfg.RecordingDir = filepath.Join(os.TempDir(), "blueace-recordings")
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	if cfg.APITimeout <= 0 {
		return nil, fmt.Errorf("API_TIMEOUT must be a positive duration")
	}
	if cfg.MinQueryLength < 1 {
		return nil, fmt.Errorf("AUTOCOMPLETE_MIN_QUERY must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}
