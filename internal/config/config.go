// Package config provides configuration types and loading for dm-data-renamer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys. They double as flag names and, upper-cased with
// EnvPrefix, as environment variable names.
const (
	KeyTablePrefix  = "prefix_table"
	KeyColumnPrefix = "prefix_column"
	KeyDryRun       = "dry_run"
	KeyLogFile      = "log_file"
	KeyMappingFile  = "mapping_file"

	EnvPrefix = "DM_RENAMER"
)

// Defaults.
const (
	DefaultTablePrefix  = "table_"
	DefaultColumnPrefix = "column_"
	DefaultLogFile      = "dm_data_renamer.log"
)

var (
	// ErrNotFound is returned when the database path does not exist.
	ErrNotFound = errors.New("database file not found")
	// ErrNotRegularFile is returned when the database path is not a regular file.
	ErrNotRegularFile = errors.New("not a file")
)

// PathError reports an invalid database path. It is raised before any
// connection is opened.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Config holds all configuration options for dm-data-renamer.
type Config struct {
	DatabasePath string
	TablePrefix  string
	ColumnPrefix string
	DryRun       bool
	LogFile      string
	MappingFile  string // empty disables the mapping export
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTablePrefix, DefaultTablePrefix)
	v.SetDefault(KeyColumnPrefix, DefaultColumnPrefix)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyLogFile, DefaultLogFile)
	v.SetDefault(KeyMappingFile, "")
}

// Load reads a Config from v. Precedence is whatever v was set up with;
// the CLI binds flags, then environment, then an optional config file.
func Load(v *viper.Viper, databasePath string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DatabasePath: databasePath,
		TablePrefix:  v.GetString(KeyTablePrefix),
		ColumnPrefix: v.GetString(KeyColumnPrefix),
		DryRun:       v.GetBool(KeyDryRun),
		LogFile:      v.GetString(KeyLogFile),
		MappingFile:  v.GetString(KeyMappingFile),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
// The database path itself is checked separately by ValidateDatabasePath
// so that the failure can be logged.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}
	if c.TablePrefix == "" {
		return fmt.Errorf("%s must not be empty", KeyTablePrefix)
	}
	if c.ColumnPrefix == "" {
		return fmt.Errorf("%s must not be empty", KeyColumnPrefix)
	}
	if c.LogFile == "" {
		return fmt.Errorf("%s must not be empty", KeyLogFile)
	}
	return nil
}

// ValidateDatabasePath checks that path exists and is a regular file.
func ValidateDatabasePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &PathError{Path: path, Err: ErrNotFound}
		}
		return &PathError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &PathError{Path: path, Err: ErrNotRegularFile}
	}
	return nil
}
