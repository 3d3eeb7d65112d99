package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidProgressModes lists the accepted values of the progress setting.
var ValidProgressModes = []string{ProgressAuto, ProgressAlways, ProgressNever}

// validate checks the merged settings.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return fmt.Errorf("directory must not be empty")
	}
	if strings.TrimSpace(c.Shell) == "" {
		return fmt.Errorf("shell must not be empty")
	}
	return validateEnum(c.Progress, "progress", ValidProgressModes)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
