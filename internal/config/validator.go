package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "observe.renderers")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Observe.Renderers < 1 {
		errors = append(errors, ValidationError{
			Field:   "observe.renderers",
			Value:   c.Observe.Renderers,
			Message: "must be at least 1",
		})
	}

	if c.Observe.CommitIntervalMs < 10 {
		errors = append(errors, ValidationError{
			Field:   "observe.commit_interval_ms",
			Value:   c.Observe.CommitIntervalMs,
			Message: "must be at least 10",
		})
	}

	if c.Observe.MaxEventRows < 1 {
		errors = append(errors, ValidationError{
			Field:   "observe.max_event_rows",
			Value:   c.Observe.MaxEventRows,
			Message: "must be at least 1",
		})
	}

	return errors
}
