package config

import (
	"log/slog"
	"os"
	"testing"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalEnv := make(map[string]string)
	envVars := []string{
		"API_PORT", "DB_PATH", "MAX_UPLOAD_BYTES",
		"ARTIFACT_CACHE_SIZE", "LOG_LEVEL", "LOG_FORMAT",
	}
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name: "defaults apply when nothing is set",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", t.TempDir()+"/mdmind.db")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "9000" &&
					cfg.MaxUploadBytes == 10485760 &&
					cfg.ArtifactCacheSize == 128 &&
					cfg.LogLevel == slog.LevelInfo &&
					cfg.LogFormat == "text"
			},
		},
		{
			name: "explicit values override defaults",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", t.TempDir()+"/mdmind.db")
				setEnv("API_PORT", "8080")
				setEnv("MAX_UPLOAD_BYTES", "1024")
				setEnv("ARTIFACT_CACHE_SIZE", "16")
				setEnv("LOG_LEVEL", "debug")
				setEnv("LOG_FORMAT", "JSON")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.APIPort == "8080" &&
					cfg.MaxUploadBytes == 1024 &&
					cfg.ArtifactCacheSize == 16 &&
					cfg.LogLevel == slog.LevelDebug &&
					cfg.LogFormat == "json"
			},
		},
		{
			name: "invalid MAX_UPLOAD_BYTES",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", t.TempDir()+"/mdmind.db")
				setEnv("MAX_UPLOAD_BYTES", "ten")
			},
			wantErr: true,
		},
		{
			name: "zero MAX_UPLOAD_BYTES",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", t.TempDir()+"/mdmind.db")
				setEnv("MAX_UPLOAD_BYTES", "0")
			},
			wantErr: true,
		},
		{
			name: "invalid ARTIFACT_CACHE_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", t.TempDir()+"/mdmind.db")
				setEnv("ARTIFACT_CACHE_SIZE", "-1")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", t.TempDir()+"/mdmind.db")
				setEnv("LOG_LEVEL", "loud")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_FORMAT",
			setupEnv: func(t *testing.T) {
				setEnv("DB_PATH", t.TempDir()+"/mdmind.db")
				setEnv("LOG_FORMAT", "yaml")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envVars {
				unsetEnv(key)
			}
			tt.setupEnv(t)

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Error("Load() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("Load() config check failed: %+v", cfg)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"silent", 0, true},
	}
	for _, tt := range tests {
		got, err := parseLogLevel(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLogLevel(%q) expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLogLevel(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
