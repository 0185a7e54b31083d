package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the process-wide configuration. It is populated once at
// startup and read-only afterwards; operations receive it explicitly and
// never mutate it.
type Config struct {
	// Credentials
	NaverID       string
	NaverPassword string

	// IMAP settings
	IMAPHost      string
	IMAPPort      int
	DefaultFolder string

	LogLevel string
}

// Load loads configuration from environment variables. Credentials may be
// absent here; the command-line flags fill them in and missing credentials
// only surface when an operation is attempted.
func Load() *Config {
	return &Config{
		NaverID:       getEnv("NAVER_ID", ""),
		NaverPassword: getEnv("NAVER_PASSWORD", ""),
		IMAPHost:      getEnv("IMAP_HOST", "imap.naver.com"),
		IMAPPort:      getEnvInt("IMAP_PORT", 993),
		DefaultFolder: getEnv("DEFAULT_FOLDER", "INBOX"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.IMAPHost == "" {
		return fmt.Errorf("IMAP_HOST is required")
	}
	if c.IMAPPort < 1 || c.IMAPPort > 65535 {
		return fmt.Errorf("invalid IMAP_PORT: %d", c.IMAPPort)
	}
	if c.DefaultFolder == "" {
		return fmt.Errorf("DEFAULT_FOLDER is required")
	}
	return nil
}

// HasCredentials reports whether both credential values are set.
func (c *Config) HasCredentials() bool {
	return c.NaverID != "" && c.NaverPassword != ""
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
