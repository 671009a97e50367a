package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "movie-assistant", cfg.App.Name)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, 15*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Classifier.Model)
	assert.Equal(t, 2048, cfg.Classifier.MaxTokens)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.TMDB.Language = "hu-HU"
	cfg.Classifier.MaxTokens = 512

	applyDefaults(cfg)

	assert.Equal(t, "hu-HU", cfg.TMDB.Language)
	assert.Equal(t, 512, cfg.Classifier.MaxTokens)
}

func TestValidateConfig_RequiresCredentials(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	err := validateConfig(cfg)
	assert.ErrorContains(t, err, "tmdb.api_key")

	cfg.TMDB.APIKey = "tmdb-key"
	err = validateConfig(cfg)
	assert.ErrorContains(t, err, "classifier.api_key")

	cfg.Classifier.APIKey = "llm-key"
	assert.NoError(t, validateConfig(cfg))
}

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-tmdb")
	t.Setenv("LLM_API_KEY", "env-llm")

	cfg := &Config{}
	overrideFromEnv(cfg)

	assert.Equal(t, "env-tmdb", cfg.TMDB.APIKey)
	assert.Equal(t, "env-llm", cfg.Classifier.APIKey)
}

func TestOverrideFromEnv_ConfigValueWins(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-tmdb")

	cfg := &Config{}
	cfg.TMDB.APIKey = "from-yaml"
	overrideFromEnv(cfg)

	assert.Equal(t, "from-yaml", cfg.TMDB.APIKey)
}
