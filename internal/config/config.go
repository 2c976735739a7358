package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	DBPath         string
	ContentPath    string
	LogLevel       string
	LogFormat      string
	LogFile        string
	Location       string
	GPSPromptDelay time.Duration
	ShuffleQuiz    bool
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		DBPath:         getEnv("SAFEGUARD_DB", ""),
		ContentPath:    getEnv("SAFEGUARD_CONTENT", ""),
		LogLevel:       getEnv("SAFEGUARD_LOG_LEVEL", "info"),
		LogFormat:      getEnv("SAFEGUARD_LOG_FORMAT", "json"),
		LogFile:        getEnv("SAFEGUARD_LOG_FILE", defaultLogFile()),
		Location:       getEnv("SAFEGUARD_LOCATION", ""),
		GPSPromptDelay: time.Duration(getEnvInt("SAFEGUARD_GPS_PROMPT_DELAY_MS", 1500)) * time.Millisecond,
		ShuffleQuiz:    getEnvBool("SAFEGUARD_SHUFFLE", false),
	}
}

// defaultLogFile is $XDG_STATE_HOME/safeguard/safeguard.log, falling back to
// ~/.local/state. Empty if the home directory cannot be resolved.
func defaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "safeguard", "safeguard.log")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
