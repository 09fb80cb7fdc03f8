package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Repository.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "repository.path",
			Message: "repository path must not be empty",
		})
	}

	for i, dir := range c.Repository.ExcludeDirs {
		if dir == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("repository.exclude_dirs[%d]", i),
				Message: "exclusion must not be empty",
			})
			continue
		}
		if strings.ContainsAny(dir, "/\\") {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("repository.exclude_dirs[%d]", i),
				Message: "exclusion must be a bare directory name, not a path",
			})
		}
	}

	switch c.Output.Format {
	case FormatSpace, FormatJSON:
	default:
		errors = append(errors, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("unknown format %q (expected %q or %q)", c.Output.Format, FormatSpace, FormatJSON),
		})
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("unknown level %q", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "text", "json":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("unknown format %q", c.Logging.Format),
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
