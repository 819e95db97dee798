package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Kargones/faillog/internal/constants"
	"github.com/Kargones/faillog/internal/pkg/logging"
)

func TestLoad_DefaultsFromEnvTags(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, constants.ScenarioAll, cfg.Scenario)
	assert.Empty(t, cfg.CorrelationID)
	assert.Equal(t, logging.FormatText, cfg.Logging.Format)
	assert.Equal(t, logging.LevelInfo, cfg.Logging.Level)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("FL_SCENARIO", constants.ScenarioDivide)
	t.Setenv("FL_CORRELATION_ID", "env-id-1")
	t.Setenv("FL_LOG_LEVEL", logging.LevelDebug)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, constants.ScenarioDivide, cfg.Scenario)
	assert.Equal(t, "env-id-1", cfg.CorrelationID)
	assert.Equal(t, logging.LevelDebug, cfg.Logging.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	raw, err := yaml.Marshal(map[string]any{
		"scenario":      constants.ScenarioLookup,
		"correlationId": "yaml-id-1",
		"logging": map[string]any{
			"format": logging.FormatJSON,
			"level":  logging.LevelWarn,
		},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "faillog.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, constants.ScenarioLookup, cfg.Scenario)
	assert.Equal(t, "yaml-id-1", cfg.CorrelationID)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
	assert.Equal(t, logging.LevelWarn, cfg.Logging.Level)
}

func TestLoad_UnknownScenario(t *testing.T) {
	t.Setenv("FL_SCENARIO", "взорви-всё")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "неизвестный сценарий")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "нет-такого.yaml"))
	assert.Error(t, err)
}

func TestMustLoad_UsesEnvConfigPath(t *testing.T) {
	raw, err := yaml.Marshal(map[string]any{"scenario": constants.ScenarioCustom})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "faillog.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0600))
	t.Setenv(constants.EnvConfigPath, path)

	cfg, err := MustLoad()
	require.NoError(t, err)
	assert.Equal(t, constants.ScenarioCustom, cfg.Scenario)
}
