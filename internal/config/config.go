// Package config provides configuration structures and loading for pkgdetect.
package config

// Config represents the complete application configuration.
type Config struct {
	Repository RepositoryConfig `yaml:"repository" mapstructure:"repository"`
	Detection  DetectionConfig  `yaml:"detection" mapstructure:"detection"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// RepositoryConfig describes the repository checkout to operate on.
type RepositoryConfig struct {
	Path    string `yaml:"path" mapstructure:"path"`
	BaseRef string `yaml:"base_ref" mapstructure:"base_ref"`
	// ExcludeDirs extends the built-in set of top-level directories that are
	// never package candidates (target, node_modules, build-container, repo).
	ExcludeDirs []string `yaml:"exclude_dirs" mapstructure:"exclude_dirs"`
}

// DetectionConfig controls change detection behaviour.
type DetectionConfig struct {
	// All bypasses change detection entirely and reports every discovered
	// package (full rebuild).
	All bool `yaml:"all" mapstructure:"all"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // space or json
	Paths  bool   `yaml:"paths" mapstructure:"paths"`   // package paths instead of names
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// Output format names accepted by OutputConfig.Format.
const (
	FormatSpace = "space"
	FormatJSON  = "json"
)

// DefaultConfig returns a Config with sensible default values.
// Logs go to stderr so stdout stays reserved for command output.
func DefaultConfig() *Config {
	return &Config{
		Repository: RepositoryConfig{
			Path: ".",
		},
		Output: OutputConfig{
			Format: FormatSpace,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-empty values are applied.
func (c *Config) ApplyOverrides(repoPath, logLevel, logFormat string) {
	if repoPath != "" {
		c.Repository.Path = repoPath
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
}
