package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Model    ModelConfig    `json:"model" yaml:"model"`
	Workflow WorkflowConfig `json:"workflow" yaml:"workflow"`
	Tools    ToolsConfig    `json:"tools" yaml:"tools"`
	Policy   PolicyConfig   `json:"policy" yaml:"policy"`
}

type ModelConfig struct {
	Name              string   `json:"name" yaml:"name"`                             // Default: gemini-2.5-flash
	SystemInstruction string   `json:"system_instruction" yaml:"system_instruction"` // Default: empty
	Temperature       *float32 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	IncludeThoughts   bool     `json:"include_thoughts" yaml:"include_thoughts"` // Default: true
}

type WorkflowConfig struct {
	MaxRounds int `json:"max_rounds" yaml:"max_rounds"` // Default: 20
}

type ToolsConfig struct {
	// File Operations
	MaxFileSize int64 `json:"max_file_size" yaml:"max_file_size"` // Default: 20 * 1024 * 1024 (20MB)

	// Directory Listing / Glob
	MaxListDirectoryResults int `json:"max_list_directory_results" yaml:"max_list_directory_results"` // Default: 1000
	MaxGlobResults          int `json:"max_glob_results" yaml:"max_glob_results"`                     // Default: 500

	// Command Execution
	DefaultMaxCommandOutputSize int64 `json:"default_max_command_output_size" yaml:"default_max_command_output_size"` // Default: 1MB
	DefaultShellTimeout         int   `json:"default_shell_timeout" yaml:"default_shell_timeout"`                     // Default: 120 (seconds)
	GracefulShutdownMs          int   `json:"graceful_shutdown_ms" yaml:"graceful_shutdown_ms"`                       // Default: 2000

	// Scheduler
	MaxConcurrentCalls int `json:"max_concurrent_calls" yaml:"max_concurrent_calls"` // Default: 4
}

// PolicyConfig lists tool names that never prompt (Allow) or are always rejected (Deny).
type PolicyConfig struct {
	Allow []string `json:"allow" yaml:"allow"`
	Deny  []string `json:"deny" yaml:"deny"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Name:            "gemini-2.5-flash",
			IncludeThoughts: true,
		},
		Workflow: WorkflowConfig{
			MaxRounds: 20,
		},
		Tools: ToolsConfig{
			MaxFileSize:                 20 * 1024 * 1024,
			MaxListDirectoryResults:     1000,
			MaxGlobResults:              500,
			DefaultMaxCommandOutputSize: 1024 * 1024,
			DefaultShellTimeout:         120,
			GracefulShutdownMs:          2000,
			MaxConcurrentCalls:          4,
		},
		Policy: PolicyConfig{
			Allow: []string{"read_file", "list_directory", "glob"},
			Deny:  []string{},
		},
	}
}
