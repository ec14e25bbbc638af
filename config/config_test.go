package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicenteCartas/megameklab/types"
)

// mockPaths points the user and project layers at files under dir.
func mockPaths(t *testing.T, dir string) (userPath, projectPath string) {
	t.Helper()
	origUser, origProject, origHome := getUserConfigPath, getProjectConfigPath, osUserHomeDir
	t.Cleanup(func() {
		getUserConfigPath, getProjectConfigPath, osUserHomeDir = origUser, origProject, origHome
	})

	userPath = filepath.Join(dir, "home", userConfigDir, configFileName)
	projectPath = filepath.Join(dir, "work", projectConfigDir, configFileName)
	osUserHomeDir = func() (string, error) { return filepath.Join(dir, "home"), nil }
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	return userPath, projectPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_DefaultOnly(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Tech, cfg.Tech)
	assert.Equal(t, filepath.Join(dir, "home", ".config/megameklab/library.db"), cfg.LibraryPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	userPath, projectPath := mockPaths(t, dir)

	writeFile(t, userPath, `
tech:
  year: 3050
  faction: clan
  mixed: true
logLevel: debug
`)
	writeFile(t, projectPath, `
tech:
  level: advanced
  mixed: false
rulesDir: ./rules
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3050, cfg.Tech.Year, "user layer")
	assert.Equal(t, "clan", cfg.Tech.Faction, "user layer")
	assert.Equal(t, "advanced", cfg.Tech.Level, "project layer")
	require.NotNil(t, cfg.Tech.Mixed)
	assert.False(t, *cfg.Tech.Mixed, "project layer switches mixed off")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./rules", cfg.RulesDir)
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir)

	explicit := filepath.Join(dir, "tournament.yaml")
	writeFile(t, explicit, "tech:\n  year: 3067\n  level: intro\nsaveDir: ~/units\n")

	cfg, err := Load(explicit)
	require.NoError(t, err)
	assert.Equal(t, 3067, cfg.Tech.Year)
	assert.Equal(t, "intro", cfg.Tech.Level)
	assert.Equal(t, filepath.Join(dir, "home", "units"), cfg.SaveDir)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	userPath, _ := mockPaths(t, dir)

	writeFile(t, userPath, "tech: [not, a, map]\n")
	_, err := Load("")
	assert.ErrorContains(t, err, "error loading user config")

	writeFile(t, userPath, "tech:\n  level: legendary\n")
	_, err = Load("")
	assert.ErrorContains(t, err, `unknown level "legendary"`)
}

func TestLoad_UnknownHomeIsSkipped(t *testing.T) {
	dir := t.TempDir()
	mockPaths(t, dir)
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }

	_, err := Load("")
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"default", func(*Config) {}, ""},
		{"bad faction", func(c *Config) { c.Tech.Faction = "periphery" }, "tech.faction"},
		{"negative year", func(c *Config) { c.Tech.Year = -1 }, "tech.year"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "logLevel"},
		{"upper case names", func(c *Config) { c.Tech.Level = "Experimental"; c.Tech.Faction = "Clan" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errMsg)
			}
		})
	}
}

func TestTechContext(t *testing.T) {
	cfg := Default()
	cfg.Tech.Level = "Advanced"
	cfg.Tech.Faction = "clan"
	mixed := true
	cfg.Tech.Mixed = &mixed

	ctx := cfg.TechContext()
	assert.Equal(t, 3145, ctx.Year)
	assert.Equal(t, types.LevelAdvanced, ctx.Level)
	assert.True(t, ctx.Clan)
	assert.True(t, ctx.Mixed)
	assert.NotNil(t, ctx.Allow)
}
