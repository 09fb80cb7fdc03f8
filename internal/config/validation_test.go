package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantIn string
	}{
		{
			name:   "empty repository path",
			mutate: func(c *Config) { c.Repository.Path = "" },
			wantIn: "repository.path",
		},
		{
			name:   "unknown output format",
			mutate: func(c *Config) { c.Output.Format = "csv" },
			wantIn: "output.format",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			wantIn: "logging.level",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			wantIn: "logging.format",
		},
		{
			name:   "empty exclusion",
			mutate: func(c *Config) { c.Repository.ExcludeDirs = []string{""} },
			wantIn: "repository.exclude_dirs[0]",
		},
		{
			name:   "exclusion with path separator",
			mutate: func(c *Config) { c.Repository.ExcludeDirs = []string{"a/b"} },
			wantIn: "repository.exclude_dirs[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestValidateCollectsMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Repository.Path = ""
	cfg.Output.Format = "csv"

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
