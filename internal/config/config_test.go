package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, 5, cfg.MaxBatchFiles)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSizeBytes)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Defaults().HistorySize, cfg.HistorySize)
}

func TestLoad_JSONFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"history_size": 25, "max_batch_files": 3}`), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.HistorySize)
	assert.Equal(t, 3, cfg.MaxBatchFiles)
	// Untouched fields keep their defaults.
	assert.Equal(t, Defaults().MaxFileSizeBytes, cfg.MaxFileSizeBytes)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_size: 7\nverbose: true\n"), 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.HistorySize)
	assert.True(t, cfg.Verbose)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("SCREENER_TAXONOMY_PATH", "/tmp/custom-taxonomy.json")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-taxonomy.json", cfg.TaxonomyPath)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg := Defaults()
	cfg.MaxBatchFiles = 0
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.HistorySize = -1
	assert.Error(t, cfg.Validate())

	cfg = Defaults()
	cfg.ScoreThresholds.Good = 90 // above excellent
	assert.Error(t, cfg.Validate())
}

func TestBand_Boundaries(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "excellent", cfg.Band(85))
	assert.Equal(t, "good", cfg.Band(84.9))
	assert.Equal(t, "good", cfg.Band(70))
	assert.Equal(t, "average", cfg.Band(50))
	assert.Equal(t, "poor", cfg.Band(49.9))
	assert.Equal(t, "poor", cfg.Band(0))
}
