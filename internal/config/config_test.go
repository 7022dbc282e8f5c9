package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitals-sh/vitals/internal/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, 600, cfg.History)
	assert.Equal(t, 30, cfg.ProcessRefreshFrames)
	assert.Equal(t, 0, cfg.DiskRefreshFrames)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"zero interval", func(c *Config) { c.Interval = 0 }, true},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }, true},
		{"negative history", func(c *Config) { c.History = -1 }, true},
		{"unbounded history valid", func(c *Config) { c.History = 0 }, false},
		{"zero process refresh", func(c *Config) { c.ProcessRefreshFrames = 0 }, true},
		{"negative disk refresh", func(c *Config) { c.DiskRefreshFrames = -1 }, true},
		{"periodic disk refresh valid", func(c *Config) { c.DiskRefreshFrames = 120 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
interval: 1s
history: 120
process_refresh_frames: 10
disk_refresh_frames: 240
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Interval)
	assert.Equal(t, 120, cfg.History)
	assert.Equal(t, 10, cfg.ProcessRefreshFrames)
	assert.Equal(t, 240, cfg.DiskRefreshFrames)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "history: 50\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.History)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
	assert.Equal(t, 30, cfg.ProcessRefreshFrames)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "interval: [not a duration\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "process_refresh_frames: 0\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "history: 1\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindInCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "history: 1\n")
	chdir(t, dir)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindWalksToParent(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "history: 1\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindStopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "history: 1\n")

	// The repo boundary sits between the config and the cwd.
	repo := filepath.Join(root, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	nested := filepath.Join(repo, "src")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	found, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	chdir(t, dir)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
