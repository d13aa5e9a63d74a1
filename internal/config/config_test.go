package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TOLLCENTS_MAPS_API_KEY", "test-key")
	t.Setenv("TOLLCENTS_SEGMENT_FILE", "/data/segments.json")
	t.Setenv("TOLLCENTS_MATCH_TOLERANCE_MILES", "0.5")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 1.0, cfg.NoTagMultiplier)
	assert.Equal(t, 12*time.Hour, cfg.CatalogTTL)
	assert.Equal(t, 30, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
	assert.True(t, cfg.RateLimitOn)
	assert.False(t, cfg.MockAPIs)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TOLLCENTS_NO_TAG_MULTIPLIER", "1.5")
	t.Setenv("TOLLCENTS_CATALOG_TTL", "30m")
	t.Setenv("TOLLCENTS_MOCK_APIS", "true")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.NoTagMultiplier)
	assert.Equal(t, 30*time.Minute, cfg.CatalogTTL)
	assert.True(t, cfg.MockAPIs)
}

func TestLoad_RequiredValues(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "maps api key", unset: "TOLLCENTS_MAPS_API_KEY"},
		{name: "segment file", unset: "TOLLCENTS_SEGMENT_FILE"},
		{name: "match tolerance", unset: "TOLLCENTS_MATCH_TOLERANCE_MILES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_NegativeTolerance(t *testing.T) {
	setRequired(t)
	t.Setenv("TOLLCENTS_MATCH_TOLERANCE_MILES", "-1")

	_, err := Load()
	assert.Error(t, err)
}
