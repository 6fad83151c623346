package config

import (
	"fmt"
	"slices"
)

// Validate checks config values for correctness.
// Returns a *ValidationError listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	if c.Model.Name == "" {
		errs = append(errs, "model.name must not be empty")
	}
	if c.Model.Temperature != nil && (*c.Model.Temperature < 0 || *c.Model.Temperature > 2) {
		errs = append(errs, "model.temperature must be between 0 and 2")
	}

	if c.Workflow.MaxRounds < 1 {
		errs = append(errs, "workflow.max_rounds must be >= 1")
	}

	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.MaxListDirectoryResults < 1 {
		errs = append(errs, "tools.max_list_directory_results must be >= 1")
	}
	if c.Tools.MaxGlobResults < 1 {
		errs = append(errs, "tools.max_glob_results must be >= 1")
	}
	if c.Tools.DefaultMaxCommandOutputSize < 1 {
		errs = append(errs, "tools.default_max_command_output_size must be >= 1")
	}
	if c.Tools.DefaultShellTimeout < 1 {
		errs = append(errs, "tools.default_shell_timeout must be >= 1")
	}
	if c.Tools.GracefulShutdownMs < 1 {
		errs = append(errs, "tools.graceful_shutdown_ms must be >= 1")
	}
	if c.Tools.MaxConcurrentCalls < 1 {
		errs = append(errs, "tools.max_concurrent_calls must be >= 1")
	}

	// A tool cannot be both always allowed and always denied
	for _, name := range c.Policy.Allow {
		if slices.Contains(c.Policy.Deny, name) {
			errs = append(errs, fmt.Sprintf("policy: tool %q is in both allow and deny", name))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}

	return nil
}
