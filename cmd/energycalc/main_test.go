package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/energycalc/internal/config"
	"github.com/jgoulah/energycalc/internal/form"
)

// execute runs the root command. Commands share package-level flag state, so these
// tests are not parallel.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTables(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	out, err := execute(t, "tables", "--config", cfgPath)
	require.NoError(t, err)

	for _, want := range []string{"Room Fixtures:", "3BHK", "Air Conditioner", "Refrigerator", "Day Multipliers:", "Saturday", "1.3"} {
		assert.Contains(t, out, want)
	}
}

func TestEstimate_MissingName(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	_, err := execute(t, "estimate", "--config", cfgPath,
		"--age", "25", "--area", "Downtown", "--city", "Mumbai", "--day", "Saturday")
	require.Error(t, err)
	assert.Equal(t, form.MissingFieldsMessage, err.Error())
}

func TestEstimate(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	out, err := execute(t, "estimate", "--config", cfgPath,
		"--name", "John Doe", "--age", "25", "--area", "Downtown", "--city", "Mumbai",
		"--rooms", "2bhk", "--day", "Saturday", "--ac", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "Room Configuration:    2BHK")
	assert.Contains(t, out, "Saturday Consumption")
	assert.Contains(t, out, "19.1 kWh")
	assert.Contains(t, out, "Weekend usage is typically higher")
}

func TestEstimate_InvalidRoom(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	_, err := execute(t, "estimate", "--config", cfgPath,
		"--name", "John Doe", "--age", "25", "--area", "Downtown", "--city", "Mumbai",
		"--rooms", "4BHK", "--day", "Monday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid room type selected")
}

func TestConfigInit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "config", "init", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+cfgPath)

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.Starter(), loaded)

	_, err = execute(t, "config", "init", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	info, err := os.Stat(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
