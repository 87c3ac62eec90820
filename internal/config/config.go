// Package config resolves runtime settings from flags, RECIPEBOOK_*
// environment variables, and an optional recipebook.yaml file.
//
// Precedence is flag > env > file > default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Keys, also used as flag names.
const (
	KeyVerbose         = "verbose"
	KeyQuiet           = "quiet"
	KeyLogFile         = "log-file"
	KeyDemo            = "demo"
	KeyNoBanner        = "no-banner"
	KeyThresholdAlerts = "threshold-alerts"
)

// EnvPrefix is prepended to every key when reading the environment,
// with dashes turned into underscores: RECIPEBOOK_LOG_FILE.
const EnvPrefix = "RECIPEBOOK"

// DefaultFile is looked up in the working directory when no explicit
// config path is given.
const DefaultFile = "recipebook.yaml"

// DefaultLogFile keeps logs out of the terminal UI.
const DefaultLogFile = ".recipebook-logs/recipebook.log"

// Config is the resolved runtime configuration.
type Config struct {
	Verbose         bool
	Quiet           bool
	LogFile         string // "stderr" logs to the console
	Demo            bool   // seed sample recipes at startup
	NoBanner        bool
	ThresholdAlerts bool // print an alert when a recipe goes over the calorie threshold

	// File is the config file that was read, empty if none.
	File string
}

// LogLevel maps the verbosity switches to a logger level. Quiet wins.
func (c Config) LogLevel() logger.Level {
	switch {
	case c.Quiet:
		return logger.LevelOff
	case c.Verbose:
		return logger.LevelVerbose
	default:
		return logger.LevelNormal
	}
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool(KeyVerbose, false, "enable verbose/debug logging")
	fs.Bool(KeyQuiet, false, "disable all logging")
	fs.String(KeyLogFile, DefaultLogFile, "file to write logs to (use \"stderr\" to log to console)")
	fs.Bool(KeyDemo, false, "start with two sample recipes")
	fs.Bool(KeyNoBanner, false, "skip the startup banner")
	fs.Bool(KeyThresholdAlerts, true, "alert when a recipe goes over 300 calories")
}

// Load resolves the configuration. fs may be nil. path names an explicit
// YAML file; when empty, DefaultFile is read if it exists.
func Load(fs *pflag.FlagSet, path string) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyLogFile, DefaultLogFile)
	v.SetDefault(KeyDemo, false)
	v.SetDefault(KeyNoBanner, false)
	v.SetDefault(KeyThresholdAlerts, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("binding flags: %w", err)
		}
	}

	file, err := readFile(v, path)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Verbose:         v.GetBool(KeyVerbose),
		Quiet:           v.GetBool(KeyQuiet),
		LogFile:         v.GetString(KeyLogFile),
		Demo:            v.GetBool(KeyDemo),
		NoBanner:        v.GetBool(KeyNoBanner),
		ThresholdAlerts: v.GetBool(KeyThresholdAlerts),
		File:            file,
	}, nil
}

// readFile loads path, or DefaultFile when path is empty and the file
// exists. An explicit path that cannot be read is an error.
func readFile(v *viper.Viper, path string) (string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		path = DefaultFile
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading config %s: %w", path, err)
	}
	return path, nil
}
