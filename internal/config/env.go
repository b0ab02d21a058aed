package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; godotenv never overrides variables that are
// already present in the process environment.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads environment variables from the first .env file found.
func loadEnvFiles() {
	for _, envPath := range envFiles {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", slog.String("file", envPath))
			return
		}
	}
}
