package syntheticcontrol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultRoot, cfg.RootDir)
	require.Equal(t, DefaultURL, cfg.URL)
	require.Equal(t, DefaultTrainCount, cfg.TrainCount)
	require.Equal(t, DefaultBlockSize, cfg.BlockSize)
	require.Equal(t, int64(DefaultSeed), cfg.Seed)
	require.Equal(t, 1, cfg.Workers)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root_dir: elsewhere\nseed: 777\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "elsewhere", cfg.RootDir)
	require.Equal(t, int64(777), cfg.Seed)
	// untouched keys keep the defaults
	require.Equal(t, DefaultURL, cfg.URL)
	require.Equal(t, DefaultTrainCount, cfg.TrainCount)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root_dir: [unclosed"), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}
