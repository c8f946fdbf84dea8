package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultSummaryPrompt is used when SUMMARY_PROMPT is not set. The %s
// placeholder is replaced with the extracted document text.
const DefaultSummaryPrompt = "Write a concise summary of the following:\n\n%s\n\nCONCISE SUMMARY:"

// Config holds the process-wide settings. It is built once at startup and
// never mutated afterwards.
type Config struct {
	HTTPAddr       string `validate:"required"`
	OpenAIAPIKey   string `validate:"required"`
	OpenAIModel    string `validate:"required"`
	OpenAIBaseURL  string `validate:"omitempty,url"`
	SummaryPrompt  string `validate:"required"`
	MaxUploadBytes int64  `validate:"gt=0"`
	RequestTimeout time.Duration
	RateLimitRPM   int `validate:"gt=0"`
	LogLevel       string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
		slog.Warn("bad int env, using default", "key", key, "value", v)
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
		slog.Warn("bad duration env, using default", "key", key, "value", v)
	}
	return def
}

func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	// try to find .env files starting from current directory and going up
	currentDir, err := os.Getwd()
	if err != nil {
		slog.Debug("failed to get current directory", "error", err)
		return
	}

	// look in current directory and up to 3 parent directories
	searchDirs := []string{currentDir}
	for i := 0; i < 3; i++ {
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break // reached root
		}
		searchDirs = append(searchDirs, parent)
		currentDir = parent
	}

	loadedAny := false
	for _, dir := range searchDirs {
		for _, envFile := range envFiles {
			envPath := filepath.Join(dir, envFile)
			if _, err := os.Stat(envPath); err == nil {
				if err := godotenv.Load(envPath); err == nil {
					slog.Debug("loaded environment file", "path", envPath)
					loadedAny = true
				} else {
					slog.Debug("failed to load environment file", "path", envPath, "error", err)
				}
			}
		}
		if loadedAny {
			break // stop searching once we find .env files in a directory
		}
	}

	if !loadedAny {
		slog.Debug("no .env files found, using system environment variables only")
	}
}

// Load reads configuration from the environment (and any discovered .env
// files) and validates it. The process must not start if an error is
// returned.
func Load() (Config, error) {
	loadEnvFiles()
	cfg := Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		OpenAIAPIKey:   getenv("OPENAI_API_KEY", ""),
		OpenAIModel:    getenv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:  getenv("OPENAI_BASE_URL", ""),
		SummaryPrompt:  getenv("SUMMARY_PROMPT", DefaultSummaryPrompt),
		MaxUploadBytes: int64(mustInt("MAX_UPLOAD_BYTES", 10<<20)),
		RequestTimeout: mustDuration("REQUEST_TIMEOUT", 60*time.Second),
		RateLimitRPM:   mustInt("RATE_LIMIT_RPM", 60),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if !strings.Contains(cfg.SummaryPrompt, "%s") {
		return Config{}, fmt.Errorf("invalid configuration: SUMMARY_PROMPT must contain a %%s placeholder")
	}
	return cfg, nil
}
