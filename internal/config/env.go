// Package config provides shared configuration utilities.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by the binaries.
const (
	EnvSSHHost        = "SSH_HOST"
	EnvSSHPort        = "SSH_PORT"
	EnvSSHHostKey     = "SSH_HOST_KEY"
	EnvSSHDisplayHost = "SSH_DISPLAY_HOST" // Host shown on the landing page
	EnvWebHost        = "WEB_HOST"
	EnvWebPort        = "WEB_PORT"
	EnvWebAssets      = "WEB_ASSETS"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFile        = "LOG_FILE"
	EnvFPS            = "SKYRAID_FPS"
)

// Load reads KEY=VALUE pairs from the given .env files (".env" when none are
// given) into the process environment. Variables that are already set win.
// A missing file is not an error.
func Load(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the environment variable named by key parsed as an int.
// Unset or malformed values yield fallback.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
