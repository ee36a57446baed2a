package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			config:  Config{Port: "8082", DBPath: "./test.db", LogLevel: "info"},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			config:      Config{Port: "abc", DBPath: "./test.db", LogLevel: "info"},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			config:      Config{Port: "0", DBPath: "./test.db", LogLevel: "info"},
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			config:      Config{Port: "70000", DBPath: "./test.db", LogLevel: "info"},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "empty db path",
			config:      Config{Port: "8082", DBPath: "", LogLevel: "info"},
			wantErr:     true,
			errorString: "database path cannot be empty",
		},
		{
			name:        "invalid log level",
			config:      Config{Port: "8082", DBPath: "./test.db", LogLevel: "loud"},
			wantErr:     true,
			errorString: "invalid log level 'loud'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCreatesDBDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Config{Port: "8082", DBPath: filepath.Join(dir, "ledger.db"), LogLevel: "info"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LEDGER_DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")
	cfg := Load()
	if cfg.Port != "8082" {
		t.Errorf("Port = %s, want 8082", cfg.Port)
	}
	if cfg.DBPath != "./data/ledger.db" {
		t.Errorf("DBPath = %s, want ./data/ledger.db", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}
