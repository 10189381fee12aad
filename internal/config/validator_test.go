package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDiscordEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	for _, name := range RequiredDiscordEnv {
		t.Setenv(name, strings.Repeat("k", MinAPIKeyLength))
	}
}

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name    string
		version string
		setAll  bool
		wantErr string
	}{
		{name: "missing version", wantErr: "ENV_SCHEMA_VERSION is not set"},
		{name: "old version", version: "0.9", wantErr: "expected 1.0, got 0.9"},
		{name: "missing discord vars", version: ExpectedEnvSchemaVersion, wantErr: "DISCORD_TOKEN"},
		{name: "complete", version: ExpectedEnvSchemaVersion, setAll: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for _, name := range RequiredDiscordEnv {
				t.Setenv(name, "")
			}
			if tt.setAll {
				setDiscordEnv(t)
			}
			t.Setenv("ENV_SCHEMA_VERSION", tt.version)

			err := ValidateEnv(RequiredDiscordEnv...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	setDiscordEnv(t)

	warnings, err := ValidateEnvWithWarnings(RequiredDiscordEnv...)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	t.Setenv("API_KEY", "short")
	t.Setenv("BATTLE_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("SIM_WORKERS", "100000")

	warnings, err = ValidateEnvWithWarnings(RequiredDiscordEnv...)
	require.NoError(t, err)
	require.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], "API_KEY")
	assert.Contains(t, warnings[1], "BATTLE_CONFIG_PATH")
	assert.Contains(t, warnings[2], "DB_PASSWORD")
	assert.Contains(t, warnings[3], "SIM_WORKERS")
}

func TestEnvWarnings_ReadableBattleConfig(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "battle.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	t.Setenv("BATTLE_CONFIG_PATH", path)

	assert.Empty(t, EnvWarnings())
}
