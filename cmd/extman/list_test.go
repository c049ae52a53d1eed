package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/extman/internal/catalog"
)

const testDataset = `[
  {"logo": "./assets/images/logo-devlens.svg", "name": "DevLens", "description": "Quickly inspect page layouts and visualize element boundaries.", "isActive": true},
  {"logo": "./assets/images/logo-style-spy.svg", "name": "StyleSpy", "description": "Instantly analyze and copy CSS from any webpage element.", "isActive": true},
  {"logo": "./assets/images/logo-speed-boost.svg", "name": "SpeedBoost", "description": "Optimizes browser resource usage to accelerate page loading.", "isActive": false}
]`

// setupHome points HOME at a temp dir and writes the dataset there.
func setupHome(t *testing.T) (home, dataPath string) {
	t.Helper()
	home = t.TempDir()
	t.Setenv("HOME", home)

	dataPath = filepath.Join(home, "data.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testDataset), 0o644))
	return home, dataPath
}

func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestListCommand_TableOutput(t *testing.T) {
	_, dataPath := setupHome(t)

	stdout, _, err := executeCommand("list", "--data", dataPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "DevLens")
	require.Contains(t, stdout, "SpeedBoost")
	// buffers are not terminals, so the ASCII status is used
	require.Contains(t, stdout, "[on] active")
	require.Contains(t, stdout, "[off] inactive")
}

func TestListCommand_FilterInactive(t *testing.T) {
	_, dataPath := setupHome(t)

	stdout, _, err := executeCommand("list", "--data", dataPath, "--filter", "inactive")
	require.NoError(t, err)
	require.Contains(t, stdout, "SpeedBoost")
	require.NotContains(t, stdout, "DevLens")
}

func TestListCommand_EmptySubset(t *testing.T) {
	home, _ := setupHome(t)
	dataPath := filepath.Join(home, "active.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`[{"name":"Only","isActive":true}]`), 0o644))

	stdout, _, err := executeCommand("list", "--data", dataPath, "-f", "inactive")
	require.NoError(t, err)
	require.Contains(t, stdout, "No inactive extensions.")
}

func TestListCommand_JSONOutput(t *testing.T) {
	_, dataPath := setupHome(t)

	stdout, _, err := executeCommand("list", "--data", dataPath, "--filter", "active", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, "active", payload.Filter)
	require.Equal(t, "light", payload.Theme)
	require.Equal(t, 2, payload.Count)
	require.Equal(t, []catalog.Item{
		{Name: "DevLens", Logo: "./assets/images/logo-devlens.svg", Description: "Quickly inspect page layouts and visualize element boundaries.", IsActive: true},
		{Name: "StyleSpy", Logo: "./assets/images/logo-style-spy.svg", Description: "Instantly analyze and copy CSS from any webpage element.", IsActive: true},
	}, payload.Items)
}

func TestListCommand_CardOutput(t *testing.T) {
	_, dataPath := setupHome(t)

	stdout, _, err := executeCommand("list", "--data", dataPath, "--cards")
	require.NoError(t, err)
	require.Contains(t, stdout, "DevLens")
	require.Contains(t, stdout, "Remove")
	require.Contains(t, stdout, "[ ] inactive")
}

func TestListCommand_InvalidFilter(t *testing.T) {
	_, dataPath := setupHome(t)

	_, _, err := executeCommand("list", "--data", dataPath, "--filter", "enabled")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing filter")
	require.Contains(t, err.Error(), "Use one of: all, active, inactive.")
}

func TestListCommand_MissingDataset(t *testing.T) {
	home, _ := setupHome(t)

	_, stderr, err := executeCommand("list", "--data", filepath.Join(home, "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading extensions")
	require.Contains(t, stderr, "could not initialize app")
}

func TestListCommand_MalformedDataset(t *testing.T) {
	home, _ := setupHome(t)
	dataPath := filepath.Join(home, "bad.json")
	require.NoError(t, os.WriteFile(dataPath, []byte("[\n{\"name\": }\n]"), 0o644))

	_, _, err := executeCommand("list", "--data", dataPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading extensions")
}

func TestRootCommand_PrintsListWithoutTerminal(t *testing.T) {
	_, dataPath := setupHome(t)

	stdout, _, err := executeCommand("--data", dataPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "DevLens")
	require.Contains(t, stdout, "StyleSpy")
	require.Contains(t, stdout, "SpeedBoost")
}

func TestRootCommand_ConfigFileSuppliesDataSource(t *testing.T) {
	home, dataPath := setupHome(t)
	configPath := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("data_source: "+dataPath+"\n"), 0o644))

	stdout, _, err := executeCommand("list", "--config", configPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "DevLens")
}

func TestRootCommand_MissingExplicitConfig(t *testing.T) {
	home, _ := setupHome(t)

	_, _, err := executeCommand("list", "--config", filepath.Join(home, "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading configuration")
}
