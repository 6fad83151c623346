package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// ShellTool executes bash commands inside the workspace.
type ShellTool struct {
	commandExecutor commandExecutor
	pathResolver    pathResolver
	fileOps         dirStatter
	config          *config.Config
}

// NewShellTool creates a new ShellTool with injected dependencies.
func NewShellTool(commandExecutor commandExecutor, pathResolver pathResolver, fileOps dirStatter, cfg *config.Config) *ShellTool {
	if commandExecutor == nil {
		panic("commandExecutor is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	return &ShellTool{
		commandExecutor: commandExecutor,
		pathResolver:    pathResolver,
		fileOps:         fileOps,
		config:          cfg,
	}
}

func (t *ShellTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name: "run_shell_command",
		Description: "Executes a command with 'bash -c <command>' in the workspace. " +
			"Returns Command, Directory, Stdout, Stderr and Exit Code. " +
			"Commands that wait for input will hang until the timeout.",
		Parameters: tool.SchemaFor[ShellRequest](),
	}
}

func (t *ShellTool) NewRequest() any { return &ShellRequest{} }

// Confirmation always asks; the prompt is the literal command string.
func (t *ShellTool) Confirmation(ctx context.Context, req any) (*tool.ConfirmationDetails, error) {
	r := req.(*ShellRequest)

	title := "Confirm Shell Command"
	if r.Description != "" {
		title = fmt.Sprintf("Confirm Shell Command: %s", r.Description)
	}
	desc := r.Command
	if r.Directory != "" {
		desc = fmt.Sprintf("%s\n(in %s)", r.Command, r.Directory)
	}

	return &tool.ConfirmationDetails{
		Kind:        tool.ConfirmExec,
		Title:       title,
		Description: desc,
	}, nil
}

// Execute runs the command. A non-zero exit is not an error: the exit code is
// part of the result. Timeouts and cancellation are errors.
func (t *ShellTool) Execute(ctx context.Context, req any) (*tool.Result, error) {
	r := req.(*ShellRequest)

	workingDir := r.Directory
	if workingDir == "" {
		workingDir = "."
	}
	wdAbs, err := t.pathResolver.Abs(workingDir)
	if err != nil {
		return nil, err
	}
	wdRel, err := t.pathResolver.Rel(wdAbs)
	if err != nil {
		return nil, err
	}
	if t.fileOps != nil {
		info, err := t.fileOps.Stat(wdAbs)
		if err != nil {
			return nil, fmt.Errorf("working directory %s: %w", wdRel, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrNotADirectory, wdRel)
		}
	}

	timeout := time.Duration(t.config.Tools.DefaultShellTimeout) * time.Second
	res, execErr := t.commandExecutor.RunWithTimeout(ctx, []string{"bash", "-c", r.Command}, wdAbs, timeout)
	if execErr != nil {
		switch {
		case errors.Is(execErr, ErrTimeout):
			return nil, fmt.Errorf("%w after %s: %s", ErrTimeout, timeout, r.Command)
		case errors.Is(execErr, context.Canceled), errors.Is(execErr, context.DeadlineExceeded):
			return nil, fmt.Errorf("command interrupted: %w", execErr)
		case errors.Is(execErr, os.ErrInvalid):
			return nil, execErr
		}
		var cmdErr *CommandError
		if errors.As(execErr, &cmdErr) {
			return nil, execErr
		}
		// Command ran but failed; the exit code is in res.
	}
	if res == nil {
		res = &ExecResult{ExitCode: -1}
	}

	return &tool.Result{
		LLMContent: formatOutput(r.Command, wdRel, res),
		Display:    fmt.Sprintf("%s (exit %d)", r.Command, res.ExitCode),
	}, nil
}

func formatOutput(command, dir string, res *ExecResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Command: %s\n", command)
	fmt.Fprintf(&b, "Directory: %s\n", dir)
	fmt.Fprintf(&b, "Stdout: %s\n", orEmpty(res.Stdout))
	fmt.Fprintf(&b, "Stderr: %s\n", orEmpty(res.Stderr))
	fmt.Fprintf(&b, "Exit Code: %d", res.ExitCode)
	if res.Truncated {
		b.WriteString("\n[Output truncated]")
	}
	return b.String()
}

func orEmpty(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return "(empty)"
	}
	return s
}
