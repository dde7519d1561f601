package capcode

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/capcode/business/derivation"
)

func validSettings() Settings {
	return Settings{
		TableName:   "capcodes",
		SaltMode:    "shared",
		HashSalt:    "test-salt",
		TimeCost:    3,
		MemoryCost:  4096,
		Parallelism: 1,
	}
}

func TestSettingsValidate(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(s *Settings)
		expectedError string
	}{
		{
			name:   "valid",
			mutate: func(s *Settings) {},
		},
		{
			name:   "empty_salt_is_allowed",
			mutate: func(s *Settings) { s.HashSalt = "" },
		},
		{
			name:   "per_record_mode",
			mutate: func(s *Settings) { s.SaltMode = "per_record" },
		},
		{
			name:          "missing_table",
			mutate:        func(s *Settings) { s.TableName = "" },
			expectedError: "TableName",
		},
		{
			name:          "unknown_salt_mode",
			mutate:        func(s *Settings) { s.SaltMode = "rotating" },
			expectedError: "SaltMode",
		},
		{
			name:          "zero_time_cost",
			mutate:        func(s *Settings) { s.TimeCost = 0 },
			expectedError: "TimeCost",
		},
		{
			name:          "parallelism_overflows_uint8",
			mutate:        func(s *Settings) { s.Parallelism = 256 },
			expectedError: "Parallelism",
		},
		{
			name: "memory_below_parallelism_floor",
			mutate: func(s *Settings) {
				s.Parallelism = 4
				s.MemoryCost = 16
			},
			expectedError: "memory cost 16 below minimum 32",
		},
		{
			name:          "short_salt",
			mutate:        func(s *Settings) { s.HashSalt = "abc" },
			expectedError: "Salt",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := validSettings()
			tc.mutate(&settings)

			err := settings.Validate()

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsDerivation(t *testing.T) {
	t.Run("configured_salt", func(t *testing.T) {
		cfg := validSettings().Derivation()

		assert.Equal(t, []byte("test-salt"), cfg.Salt)
		assert.Equal(t, derivation.SharedSaltMode, cfg.SaltMode)
		assert.Equal(t, uint32(3), cfg.TimeCost)
		assert.Equal(t, uint32(4096), cfg.MemoryCost)
		assert.Equal(t, uint8(1), cfg.Parallelism)
		assert.Equal(t, derivation.VariantID, cfg.Variant)
		assert.False(t, cfg.UsesDefaultSalt())
	})

	t.Run("missing_salt_uses_default", func(t *testing.T) {
		settings := validSettings()
		settings.HashSalt = ""

		cfg := settings.Derivation()

		assert.Equal(t, derivation.DefaultSalt, cfg.Salt)
		assert.True(t, cfg.UsesDefaultSalt())
	})
}

func TestSettingsFromConfig(t *testing.T) {
	settings := settingsFromConfig(cfg)

	assert.Equal(t, "capcodes", settings.TableName)
	assert.Equal(t, "shared", settings.SaltMode)
	assert.Equal(t, 3, settings.TimeCost)
	assert.Equal(t, 4096, settings.MemoryCost)
	assert.Equal(t, 1, settings.Parallelism)
	assert.NoError(t, settings.Validate())
}

func TestHealth(t *testing.T) {
	service := &Service{}

	before := time.Now().UTC().Truncate(time.Millisecond)
	response, err := service.Health(context.Background())

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Server is running", response.Message)

	ts, err := time.Parse(time.RFC3339Nano, response.Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(before))
}
