package battle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, ConfigVersion, cfg.Version)
	assert.Equal(t, 0.0625, cfg.Damage.CritChance)
	assert.Equal(t, 0.20, cfg.Traits.AssignChance)
	assert.Equal(t, 0.85, cfg.AI.PreferredSwitch)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "partial override keeps defaults",
			data: `{"version": "1.1", "traits": {"assign_chance": 0.5}}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "1.1", cfg.Version)
				assert.Equal(t, 0.5, cfg.Traits.AssignChance)
				assert.Equal(t, 0.12, cfg.Traits.LastStandThreshold)
				assert.Equal(t, 85, cfg.Damage.RollMin)
			},
		},
		{
			name:  "empty document is stock tuning",
			data:  `{}`,
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, DefaultConfig(), cfg) },
		},
		{
			name:    "probability out of range",
			data:    `{"damage": {"crit_chance": 2}}`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown field",
			data:    `{"ai": {"aggression": 3}}`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "inverted roll range",
			data:    `{"damage": {"roll_min": 99, "roll_max": 90}}`,
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "inverted switch clamp",
			data:    `{"ai": {"min_switch": 0.9, "max_switch": 0.1}}`,
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ai": {"jitter": 0}}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.AI.Jitter)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrContextReadConfig)
}
