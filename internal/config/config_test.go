package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     []string
		setupEnv    map[string]string
		expectError bool
	}{
		{
			name:    "AllPresent",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_2"},
			setupEnv: map[string]string{
				"TEST_VAR_1": "value1",
				"TEST_VAR_2": "value2",
			},
			expectError: false,
		},
		{
			name:    "OneMissing",
			envVars: []string{"TEST_VAR_1", "TEST_VAR_MISSING"},
			setupEnv: map[string]string{
				"TEST_VAR_1": "value1",
			},
			expectError: true,
		},
		{
			name:    "PresentButEmpty",
			envVars: []string{"TEST_VAR_EMPTY"},
			setupEnv: map[string]string{
				"TEST_VAR_EMPTY": "",
			},
			expectError: true,
		},
		{
			name:        "NoneRequired",
			envVars:     nil,
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.setupEnv {
				t.Setenv(key, value)
			}

			err := checkEnv(tt.envVars)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_MODE", "debug")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("BASE_DOWNLOAD_DIR", "")
	t.Setenv("MAX_CONCURRENT_DOWNLOADS", "")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "")
	t.Setenv("JOB_PROGRESS_FLUSH_INTERVAL_MS", "")
	t.Setenv("MIN_FREE_DISK_MB", "")
	t.Setenv("YTDLP_PATH", "")

	cfg, err := LoadConfig("")

	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogMode)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "./downloads", cfg.BaseDownloadDir)
	assert.Equal(t, 4, cfg.MaxWorkers)
	assert.Equal(t, 15*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 750*time.Millisecond, cfg.ProgressFlush)
	assert.Equal(t, 512, cfg.MinFreeDiskMB)
	assert.Equal(t, "yt-dlp", cfg.YtDlpPath)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("LOG_MODE", "prod")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BASE_DOWNLOAD_DIR", "/srv/media")
	t.Setenv("MAX_CONCURRENT_DOWNLOADS", "8")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "60")
	t.Setenv("JOB_PROGRESS_FLUSH_INTERVAL_MS", "250")
	t.Setenv("MIN_FREE_DISK_MB", "1024")
	t.Setenv("YTDLP_PATH", "/usr/local/bin/yt-dlp")

	cfg, err := LoadConfig("")

	assert.NoError(t, err)
	assert.Equal(t, "/srv/media", cfg.BaseDownloadDir)
	assert.Equal(t, 8, cfg.MaxWorkers)
	assert.Equal(t, time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.ProgressFlush)
	assert.Equal(t, 1024, cfg.MinFreeDiskMB)
	assert.Equal(t, "/usr/local/bin/yt-dlp", cfg.YtDlpPath)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		setupEnv map[string]string
	}{
		{
			name: "MissingRequired",
			setupEnv: map[string]string{
				"LOG_MODE":    "",
				"SERVER_PORT": "",
			},
		},
		{
			name: "NonNumericWorkers",
			setupEnv: map[string]string{
				"LOG_MODE":                 "debug",
				"SERVER_PORT":              "8080",
				"MAX_CONCURRENT_DOWNLOADS": "many",
			},
		},
		{
			name: "ZeroWorkers",
			setupEnv: map[string]string{
				"LOG_MODE":                 "debug",
				"SERVER_PORT":              "8080",
				"MAX_CONCURRENT_DOWNLOADS": "0",
			},
		},
		{
			name: "ZeroProgressFlush",
			setupEnv: map[string]string{
				"LOG_MODE":                       "debug",
				"SERVER_PORT":                    "8080",
				"JOB_PROGRESS_FLUSH_INTERVAL_MS": "0",
			},
		},
		{
			name: "NegativeTimeout",
			setupEnv: map[string]string{
				"LOG_MODE":                 "debug",
				"SERVER_PORT":              "8080",
				"MAX_CONCURRENT_DOWNLOADS": "4",
				"FETCH_TIMEOUT_SECONDS":    "-5",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.setupEnv {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig("")

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
