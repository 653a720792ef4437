package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	configDirName  = "wingest"
	configFileName = "config.ini"
)

// Config holds the settings that can be kept in config.ini. Command line
// flags take precedence over every value here.
type Config struct {
	Listen    string
	CORS      bool
	DriverURL string
	SessionID string
	SizeCache int
	Verbose   bool
}

// DefaultConfigPath returns <user config dir>/wingest/config.ini.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// LoadConfig reads the ini file at path. A missing file yields an empty
// config unless mustExist is set.
func LoadConfig(path string, mustExist bool) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			Verbose("No config file at %s", path)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	serverSection := file.Section("server")
	config.Listen = serverSection.Key("listen").String()
	config.CORS = serverSection.Key("cors").MustBool(false)

	driverSection := file.Section("driver")
	config.DriverURL = driverSection.Key("url").String()
	config.SessionID = driverSection.Key("session").String()
	config.SizeCache = driverSection.Key("size_cache").MustInt(0)
	if config.SizeCache < 0 {
		return nil, fmt.Errorf("invalid size_cache %d in %s, must not be negative", config.SizeCache, path)
	}

	config.Verbose = file.Section("log").Key("verbose").MustBool(false)

	Verbose("Loaded config from %s", path)
	return config, nil
}
