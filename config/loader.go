package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VicenteCartas/megameklab/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/megameklab"
	projectConfigDir = ".megameklab"
	configFileName   = "config.yaml"
)

// Load layers the defaults, the user config, the project config and, when
// explicit is not empty, that file. Missing user and project files are
// skipped; a missing explicit file is an error.
func Load(explicit string) (Config, error) {
	cfg := Default()

	for _, layer := range []struct {
		name string
		path func() (string, error)
	}{
		{"user", getUserConfigPath},
		{"project", getProjectConfigPath},
	} {
		path, err := layer.path()
		if err != nil {
			logging.Warn("config", "cannot determine %s config path: %v", layer.name, err)
			continue
		}
		overlay, err := loadConfigFromFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("error loading %s config from %s: %w", layer.name, path, err)
		}
		cfg = mergeConfigs(cfg, overlay)
	}

	if explicit != "" {
		overlay, err := loadConfigFromFile(explicit)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicit, err)
		}
		cfg = mergeConfigs(cfg, overlay)
	}

	cfg.LibraryPath = expandHome(cfg.LibraryPath)
	cfg.RulesDir = expandHome(cfg.RulesDir)
	cfg.SaveDir = expandHome(cfg.SaveDir)
	return cfg, cfg.Validate()
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfigs merges 'overlay' into 'base'. Set fields win.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Tech.Year != 0 {
		merged.Tech.Year = overlay.Tech.Year
	}
	if overlay.Tech.Level != "" {
		merged.Tech.Level = overlay.Tech.Level
	}
	if overlay.Tech.Faction != "" {
		merged.Tech.Faction = overlay.Tech.Faction
	}
	if overlay.Tech.Mixed != nil {
		merged.Tech.Mixed = overlay.Tech.Mixed
	}
	if overlay.RulesDir != "" {
		merged.RulesDir = overlay.RulesDir
	}
	if overlay.LibraryPath != "" {
		merged.LibraryPath = overlay.LibraryPath
	}
	if overlay.SaveDir != "" {
		merged.SaveDir = overlay.SaveDir
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return merged
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := osUserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
