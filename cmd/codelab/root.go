package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/console"
)

type rootOptions struct {
	model      string
	workspace  string
	configPath string
	maxRounds  int
	verbose    bool
}

func newRootCmd(deps *Dependencies) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "codelab",
		Short:         "Step through an approval-gated Gemini tool loop.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(deps.In)
	cmd.SetOut(deps.Out)
	cmd.SetErr(deps.Err)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.model, "model", "", "Gemini model name (overrides config)")
	flags.StringVar(&opts.workspace, "workspace", "", "Workspace root for file and shell tools (default: current directory)")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: ~/.config/codelab/config.{json,yaml,yml})")
	flags.IntVar(&opts.maxRounds, "max-rounds", 0, "Maximum backend rounds per turn (overrides config)")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newHelloCmd(deps, opts),
		newStreamCmd(deps, opts),
		newToolCmd(deps, opts),
		newScheduleCmd(deps, opts),
		newAgentCmd(deps, opts),
	)
	return cmd
}

// session is the per-invocation state shared by every step. out and errOut
// are shared by everything that writes to the terminal.
type session struct {
	id     string
	cfg    *config.Config
	logger *slog.Logger
	out    *console.SyncWriter
	errOut *console.SyncWriter
}

func newSession(cmd *cobra.Command, deps *Dependencies, opts *rootOptions) (*session, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	out, errOut := console.NewSyncWriter(deps.Out), console.NewSyncWriter(deps.Err)
	id := uuid.New().String()
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})).With("session", id)
	logger.Debug("[codelab] session started", "model", cfg.Model.Name, "command", cmd.Name())

	return &session{id: id, cfg: cfg, logger: logger, out: out, errOut: errOut}, nil
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.NewLoader().LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model.Name = opts.model
	}
	if flags.Changed("max-rounds") {
		cfg.Workflow.MaxRounds = opts.maxRounds
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func workspaceRoot(opts *rootOptions) (string, error) {
	if opts.workspace != "" {
		return opts.workspace, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
