package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		DatabasePath: "app.db",
		TablePrefix:  DefaultTablePrefix,
		ColumnPrefix: DefaultColumnPrefix,
		LogFile:      DefaultLogFile,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"valid custom prefixes", func(c *Config) { c.TablePrefix = "t_"; c.ColumnPrefix = "c_" }, false},
		{"missing database", func(c *Config) { c.DatabasePath = "" }, true},
		{"empty table prefix", func(c *Config) { c.TablePrefix = "" }, true},
		{"empty column prefix", func(c *Config) { c.ColumnPrefix = "" }, true},
		{"empty log file", func(c *Config) { c.LogFile = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDatabasePath(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "app.db")
	if err := os.WriteFile(filePath, nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"regular file", filePath, nil},
		{"missing", filepath.Join(tmpDir, "missing.db"), ErrNotFound},
		{"directory", tmpDir, ErrNotRegularFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabasePath(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDatabasePath(%q) error = %v", tt.path, err)
				}
				return
			}

			var pathErr *PathError
			if !errors.As(err, &pathErr) {
				t.Fatalf("ValidateDatabasePath(%q) error = %v, want *PathError", tt.path, err)
			}
			if pathErr.Path != tt.path {
				t.Errorf("PathError.Path = %q, want %q", pathErr.Path, tt.path)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDatabasePath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "app.db")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TablePrefix != DefaultTablePrefix {
		t.Errorf("TablePrefix = %q, want %q", cfg.TablePrefix, DefaultTablePrefix)
	}
	if cfg.ColumnPrefix != DefaultColumnPrefix {
		t.Errorf("ColumnPrefix = %q, want %q", cfg.ColumnPrefix, DefaultColumnPrefix)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, DefaultLogFile)
	}
	if cfg.DryRun {
		t.Error("Expected DryRun to default to false")
	}
	if cfg.MappingFile != "" {
		t.Errorf("MappingFile = %q, want empty", cfg.MappingFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DM_RENAMER_PREFIX_TABLE", "t_")
	t.Setenv("DM_RENAMER_DRY_RUN", "true")

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v, "app.db")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TablePrefix != "t_" {
		t.Errorf("TablePrefix = %q, want %q", cfg.TablePrefix, "t_")
	}
	if !cfg.DryRun {
		t.Error("Expected DryRun from environment")
	}
	if cfg.ColumnPrefix != DefaultColumnPrefix {
		t.Errorf("ColumnPrefix = %q, want %q", cfg.ColumnPrefix, DefaultColumnPrefix)
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "renamer.yaml")
	content := "prefix_column: c_\nmapping_file: mapping.csv\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(cfgPath)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load(v, "app.db")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ColumnPrefix != "c_" {
		t.Errorf("ColumnPrefix = %q, want %q", cfg.ColumnPrefix, "c_")
	}
	if cfg.MappingFile != "mapping.csv" {
		t.Errorf("MappingFile = %q, want %q", cfg.MappingFile, "mapping.csv")
	}
}

func TestLoadRejectsEmptyPrefix(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyTablePrefix, "")

	if _, err := Load(v, "app.db"); err == nil {
		t.Error("Expected error for empty table prefix, got nil")
	}
}
