// Package config loads editor settings by layering the built-in defaults,
// the user's config file and the project's config file.
package config

import (
	"fmt"
	"strings"

	"github.com/VicenteCartas/megameklab/engine/catalog"
	"github.com/VicenteCartas/megameklab/engine/tech"
	"github.com/VicenteCartas/megameklab/logging"
)

// Config is the top-level configuration.
type Config struct {
	Tech        TechConfig `yaml:"tech"`
	RulesDir    string     `yaml:"rulesDir,omitempty"`
	LibraryPath string     `yaml:"libraryPath,omitempty"`
	SaveDir     string     `yaml:"saveDir,omitempty"`
	LogLevel    string     `yaml:"logLevel,omitempty"`
}

// TechConfig holds the rules settings a session starts with.
type TechConfig struct {
	// Year 0 disables intro-year checks.
	Year    int    `yaml:"year,omitempty"`
	Level   string `yaml:"level,omitempty"`
	Faction string `yaml:"faction,omitempty"`
	// Mixed is a pointer so an overlay can switch it off explicitly.
	Mixed *bool `yaml:"mixed,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	mixed := false
	return Config{
		Tech: TechConfig{
			Year:    3145,
			Level:   "standard",
			Faction: "is",
			Mixed:   &mixed,
		},
		LibraryPath: "~/.config/megameklab/library.db",
		SaveDir:     ".",
		LogLevel:    "info",
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if _, ok := catalog.ParseTechLevel(strings.ToLower(c.Tech.Level)); !ok {
		return fmt.Errorf("tech.level: unknown level %q (want one of %s)",
			c.Tech.Level, strings.Join(catalog.TechLevelNames, ", "))
	}
	switch strings.ToLower(c.Tech.Faction) {
	case "is", "clan":
	default:
		return fmt.Errorf("tech.faction: unknown faction %q (want is or clan)", c.Tech.Faction)
	}
	if c.Tech.Year < 0 {
		return fmt.Errorf("tech.year: %d is negative", c.Tech.Year)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("logLevel: unknown level %q", c.LogLevel)
	}
	return nil
}

// TechContext builds the legality context the settings describe. Call
// Validate first; unknown names fall back to intro rules and the Inner
// Sphere.
func (c Config) TechContext() *tech.Context {
	level, _ := catalog.ParseTechLevel(strings.ToLower(c.Tech.Level))
	mixed := c.Tech.Mixed != nil && *c.Tech.Mixed
	return tech.NewContext(c.Tech.Year, level, strings.EqualFold(c.Tech.Faction, "clan"), mixed)
}
