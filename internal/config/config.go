package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode         string
	ServerPort      string
	BaseDownloadDir string
	MaxWorkers      int
	FetchTimeout    time.Duration
	ProgressFlush   time.Duration
	MinFreeDiskMB   int
	YtDlpPath       string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	err := checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
	})
	if err != nil {
		return err
	}

	return nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("env %s: %w", name, err)
	}
	return value, nil
}

func LoadConfig(envPath string) (*Config, error) {
	if envPath != "" {
		// Missing .env is fine, real env vars may carry everything.
		_ = godotenv.Load(envPath)
	}

	if err := validateEnv(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	maxWorkers, err := envIntOrDefault("MAX_CONCURRENT_DOWNLOADS", 4)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	if maxWorkers < 1 {
		return nil, fmt.Errorf("LoadConfig: MAX_CONCURRENT_DOWNLOADS must be positive, got %d", maxWorkers)
	}

	fetchTimeoutSec, err := envIntOrDefault("FETCH_TIMEOUT_SECONDS", 900)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	if fetchTimeoutSec < 1 {
		return nil, fmt.Errorf("LoadConfig: FETCH_TIMEOUT_SECONDS must be positive, got %d", fetchTimeoutSec)
	}

	progressFlushMS, err := envIntOrDefault("JOB_PROGRESS_FLUSH_INTERVAL_MS", 750)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	if progressFlushMS < 1 {
		return nil, fmt.Errorf("LoadConfig: JOB_PROGRESS_FLUSH_INTERVAL_MS must be positive, got %d", progressFlushMS)
	}

	minFreeDiskMB, err := envIntOrDefault("MIN_FREE_DISK_MB", 512)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	return &Config{
		LogMode:         os.Getenv("LOG_MODE"),
		ServerPort:      os.Getenv("SERVER_PORT"),
		BaseDownloadDir: envOrDefault("BASE_DOWNLOAD_DIR", "./downloads"),
		MaxWorkers:      maxWorkers,
		FetchTimeout:    time.Duration(fetchTimeoutSec) * time.Second,
		ProgressFlush:   time.Duration(progressFlushMS) * time.Millisecond,
		MinFreeDiskMB:   minFreeDiskMB,
		YtDlpPath:       envOrDefault("YTDLP_PATH", "yt-dlp"),
	}, nil
}
