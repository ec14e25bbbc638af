package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with a throwaway home directory so the
// user config and library never leak into tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "megameklab dev (commit none, built unknown)\n", out)
}

func TestOptionsCmd(t *testing.T) {
	out, err := execute(t, "options", "gyro")
	require.NoError(t, err)
	assert.Contains(t, out, "gyro:")
	assert.Contains(t, out, "[Standard]")
	assert.Contains(t, out, "tonnage:")
}

func TestOptionsCmd_RulesPackOverrides(t *testing.T) {
	out, err := execute(t, "options", "structure", "--rules", "../../loader/testdata/basic")
	require.NoError(t, err)
	assert.NotContains(t, out, "Endo Steel", "the pack forbids IS Endo Steel")
}

func TestScriptPlayback(t *testing.T) {
	script := writeScript(t, "# warm up\ntonnage 50\ngyro compact\n/quit\n")
	out, err := execute(t, "--script", script)
	require.NoError(t, err)
	assert.Contains(t, out, "> tonnage 50")
	assert.Contains(t, out, "Tonnage set to 50; engine rating 50.")
	assert.Contains(t, out, "Gyro set to Compact.")
	assert.Contains(t, out, "[Goodbye.]")
}

func TestScriptPlayback_StockDesign(t *testing.T) {
	script := writeScript(t, "new locust\n")
	out, err := execute(t, "--script", script, "--rules", "../../loader/testdata/basic", "--trace")
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded Locust LCT-1V.")
	assert.Contains(t, out, "[[trace] Refreshed:")
}

func TestUnitFlag(t *testing.T) {
	dir := t.TempDir()
	saveScript := writeScript(t, "chassis Panther\nmodel PNT-9R\ntonnage 35\n/save "+filepath.Join(dir, "panther.json")+"\n")
	_, err := execute(t, "--script", saveScript)
	require.NoError(t, err)

	out, err := execute(t, "--script", writeScript(t, "status\n"), "--unit", filepath.Join(dir, "panther.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "Panther PNT-9R")
	assert.Contains(t, out, "35t")

	_, err = execute(t, "--unit", filepath.Join(dir, "missing.json"), "--plain")
	assert.Error(t, err)
}

func TestLibraryCmd(t *testing.T) {
	home := t.TempDir()
	unitFile := filepath.Join(t.TempDir(), "wasp.json")
	run := func(args ...string) (string, error) {
		t.Setenv("HOME", home)
		var out bytes.Buffer
		root := newRootCmd()
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		err := root.Execute()
		return out.String(), err
	}

	out, err := run("library", "list")
	require.NoError(t, err)
	assert.Equal(t, "The library is empty.\n", out)

	_, err = run("--script", writeScript(t, "chassis Wasp\nmodel WSP-1A\ntonnage 20\n/save "+unitFile+"\n"))
	require.NoError(t, err)

	out, err = run("library", "import", unitFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Stored Wasp WSP-1A")

	out, err = run("library", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Wasp WSP-1A")

	out, err = run("library", "delete", "Wasp", "WSP-1A")
	require.NoError(t, err)
	assert.Equal(t, "Removed Wasp WSP-1A.\n", out)

	_, err = run("library", "delete", "Wasp", "WSP-1A")
	assert.ErrorContains(t, err, "not found")
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "somewhere")
	assert.Error(t, err)
}
