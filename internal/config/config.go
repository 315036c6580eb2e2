// Package config loads defaults for the command line from an env file and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/litescript/skyq/internal/skyerr"
)

// Environment variables read by Load.
const (
	EnvConfig   = "SKYQ_CONFIG"
	EnvLocation = "SKYQ_LOCATION"
	EnvFormat   = "SKYQ_FORMAT"
	EnvLogLevel = "SKYQ_LOG_LEVEL"
	EnvRefresh  = "SKYQ_REFRESH"
	EnvNoColor  = "NO_COLOR"
)

const (
	defaultLocation = "none"
	defaultFormat   = "term"
	defaultLogLevel = "warn"
	defaultRefresh  = time.Second
)

// Config holds flag defaults. Values are raw strings; the command line
// parses them after flags are applied.
type Config struct {
	Location string
	Format   string
	LogLevel string
	Refresh  time.Duration
	NoColor  bool
	// Path is the env file that was read, if any.
	Path string
}

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration. The env file supplies values the process
// environment does not set; built-in defaults fill the rest.
func Load(lookup LookupFunc) (Config, error) {
	cfg := Config{
		Location: defaultLocation,
		Format:   defaultFormat,
		LogLevel: defaultLogLevel,
		Refresh:  defaultRefresh,
	}

	file := map[string]string{}
	if path := filePath(lookup); path != "" {
		vals, err := godotenv.Read(path)
		switch {
		case err == nil:
			file, cfg.Path = vals, path
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, skyerr.Configuration("config file", path, err.Error())
		}
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(file[key])
	}

	if v := get(EnvLocation); v != "" {
		cfg.Location = v
	}
	if v := get(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := get(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := get(EnvRefresh); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvRefresh,
				skyerr.Configuration("refresh interval", v, "expected a duration such as 5s"))
		}
		cfg.Refresh = d
	}
	// Any non-empty NO_COLOR disables color.
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		cfg.NoColor = true
	} else if file[EnvNoColor] != "" {
		cfg.NoColor = true
	}
	return cfg, nil
}

// filePath returns $SKYQ_CONFIG, $XDG_CONFIG_HOME/skyq/env or
// ~/.config/skyq/env.
func filePath(lookup LookupFunc) string {
	if p, ok := lookup(EnvConfig); ok && p != "" {
		return p
	}
	if dir, ok := lookup("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, "skyq", "env")
	}
	if home, ok := lookup("HOME"); ok && home != "" {
		return filepath.Join(home, ".config", "skyq", "env")
	}
	return ""
}
