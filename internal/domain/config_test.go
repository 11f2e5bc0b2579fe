package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomsv/gomsv/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, []string{"go", "build", "./..."}, cfg.CheckCommand)
	assert.Nil(t, cfg.MinimumVersion)
	assert.Nil(t, cfg.MaximumVersion)
	assert.False(t, cfg.IncludeAllPatchReleases)
	require.NoError(t, cfg.Validate())
}

func TestConfig_CheckCommandString(t *testing.T) {
	cfg := domain.Config{CheckCommand: []string{"go", "test", "./..."}}
	assert.Equal(t, "go test ./...", cfg.CheckCommandString())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{"empty check command", func(c *domain.Config) { c.CheckCommand = nil }, "check command"},
		{"bad minimum", func(c *domain.Config) { c.MinimumVersion = vp("oldest") }, "minimum version"},
		{"bad maximum", func(c *domain.Config) { c.MaximumVersion = vp("newest") }, "maximum version"},
		{
			"min above max",
			func(c *domain.Config) {
				c.MinimumVersion = vp("1.51.0")
				c.MaximumVersion = vp("1.50.0")
			},
			"above maximum",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestFileSettings_Validate(t *testing.T) {
	require.NoError(t, domain.FileSettings{}.Validate())
	require.NoError(t, domain.FileSettings{MinVersion: "1.49.0", MaxVersion: "1.51.0"}.Validate())

	assert.Error(t, domain.FileSettings{MinVersion: "oldest"}.Validate())
	assert.Error(t, domain.FileSettings{MaxVersion: "newest"}.Validate())
}
