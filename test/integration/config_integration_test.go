//go:build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/go-appstore/internal/platform/config"
)

// configDir is the repository's configs directory.
const configDir = "../../configs"

// TestConfig_ShippedProfiles verifies that the committed configuration files
// load and validate.
func TestConfig_ShippedProfiles(t *testing.T) {
	tests := []struct {
		profile    string
		wantFile   string
		wantLevel  string
		wantFormat string
		wantSeed   int64
	}{
		{profile: "", wantFile: "apps.yaml", wantLevel: "info", wantFormat: "pretty", wantSeed: 0},
		{profile: "test", wantFile: "apps-test.yaml", wantLevel: "debug", wantFormat: "json", wantSeed: 42},
	}

	for _, tt := range tests {
		t.Run("profile="+tt.profile, func(t *testing.T) {
			cfg, err := config.LoadFrom(configDir, tt.profile)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())

			assert.Equal(t, tt.wantFile, cfg.Catalog.File)
			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
			assert.Equal(t, tt.wantFormat, cfg.Log.Format)
			assert.Equal(t, tt.wantSeed, cfg.Catalog.Seed)
		})
	}
}

// TestConfig_EnvOverridesShippedProfile verifies APP_ variables win over the
// profile file.
func TestConfig_EnvOverridesShippedProfile(t *testing.T) {
	t.Setenv("APP_CATALOG_FILE", "/tmp/override.yaml")

	cfg, err := config.LoadFrom(configDir, "test")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override.yaml", cfg.Catalog.File)
	assert.Equal(t, int64(42), cfg.Catalog.Seed)
}
