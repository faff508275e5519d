package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/asicmf-labs/asicmf/internal/branding"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyExpectedMimeType = "expected_mimetype"
	KeyIndent           = "indent"
	KeyStrict           = "strict"
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
)

// Keys lists every key Set accepts.
var Keys = []string{KeyExpectedMimeType, KeyIndent, KeyStrict, KeyLogLevel, KeyLogFormat}

// Dir returns the path to the config directory (~/.asicmf/).
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.asicmf/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyIndent, 2)
	viper.SetDefault(KeyStrict, true)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "pretty")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// ExpectedMimeType returns the default expected package mimetype, if any.
func ExpectedMimeType() (string, bool) {
	mt := viper.GetString(KeyExpectedMimeType)
	return mt, mt != ""
}

// Indent returns the number of spaces used when writing manifests.
func Indent() int {
	return viper.GetInt(KeyIndent)
}

// Strict reports whether soft findings should fail validation.
func Strict() bool {
	return viper.GetBool(KeyStrict)
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// LogFormat returns "pretty" or "json".
func LogFormat() string {
	return viper.GetString(KeyLogFormat)
}

// Value sources reported by Source.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
)

// CheckKey rejects keys Set does not know.
func CheckKey(key string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (valid keys: %v)", key, Keys)
	}
	return nil
}

// CheckValue reports whether value is acceptable for key, using the same
// conversions the typed getters apply when reading it back.
func CheckValue(key, value string) error {
	switch key {
	case KeyIndent:
		n, err := cast.ToIntE(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
	case KeyStrict:
		if _, err := cast.ToBoolE(value); err != nil {
			return fmt.Errorf("%s must be true or false, got %q", key, value)
		}
	case KeyLogLevel:
		if _, err := zerolog.ParseLevel(value); err != nil || value == "" {
			return fmt.Errorf("%s must be one of trace, debug, info, warn, error, got %q", key, value)
		}
	case KeyLogFormat:
		if value != "pretty" && value != "json" {
			return fmt.Errorf("%s must be pretty or json, got %q", key, value)
		}
	}
	return nil
}

// Source reports where the effective value of key comes from. The
// environment wins over the config file.
func Source(key string) string {
	if _, ok := os.LookupEnv(branding.EnvVar(key)); ok {
		return SourceEnv
	}
	if viper.InConfig(key) {
		return SourceFile
	}
	return SourceDefault
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := CheckKey(key); err != nil {
		return err
	}
	if err := CheckValue(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// A separate instance keeps defaults and env values out of the file.
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
