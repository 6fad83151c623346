package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/taeold/gemini-cli-core-codelab/internal/config"
)

// ExecResult represents the outcome of a command execution.
type ExecResult struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// OSCommandExecutor runs real processes via os/exec.
type OSCommandExecutor struct {
	config *config.Config
}

// NewOSCommandExecutor creates a new OSCommandExecutor with injected config.
func NewOSCommandExecutor(cfg *config.Config) *OSCommandExecutor {
	if cfg == nil {
		panic("cfg is required")
	}
	return &OSCommandExecutor{config: cfg}
}

// RunWithTimeout executes a command with a timeout and graceful shutdown.
// On timeout the process gets an interrupt, then a kill after the configured
// grace period. Context cancellation kills the process immediately.
// A non-zero exit is reported through the *exec.ExitError and ExitCode.
func (e *OSCommandExecutor) RunWithTimeout(ctx context.Context, command []string, dir string, timeout time.Duration) (*ExecResult, error) {
	if len(command) == 0 {
		return nil, os.ErrInvalid
	}

	// exec.CommandContext would kill on deadline without the interrupt step.
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdin = nil
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	grace := time.Duration(e.config.Tools.GracefulShutdownMs) * time.Millisecond
	// Bounds how long Wait keeps copying output after the process exits,
	// e.g. when a background child still holds the pipes.
	cmd.WaitDelay = grace

	maxBytes := int(e.config.Tools.DefaultMaxCommandOutputSize)
	stdout := newCollector(maxBytes, binarySampleSize)
	stderr := newCollector(maxBytes, binarySampleSize)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Stage: "start", Cause: err}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	var execErr error
	select {
	case execErr = <-done:
	case <-ctx.Done():
		signalGroup(cmd, syscall.SIGKILL)
		<-done
		execErr = ctx.Err()
	case <-timer:
		signalGroup(cmd, syscall.SIGINT)
		select {
		case <-done:
		case <-time.After(grace):
			signalGroup(cmd, syscall.SIGKILL)
			<-done
		}
		execErr = ErrTimeout
	}
	if errors.Is(execErr, exec.ErrWaitDelay) {
		// Exited cleanly; only a lingering child kept the pipes open.
		execErr = nil
	}

	exitCode := 0
	if execErr != nil {
		exitCode = exitCodeOf(execErr)
	}

	return &ExecResult{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		ExitCode:  exitCode,
		Truncated: stdout.Truncated() || stderr.Truncated(),
	}, execErr
}

// signalGroup delivers sig to the command's whole process group so
// children spawned by bash are stopped too.
func signalGroup(cmd *exec.Cmd, sig syscall.Signal) {
	if cmd.Process == nil {
		return
	}
	if err := syscall.Kill(-cmd.Process.Pid, sig); err != nil {
		_ = cmd.Process.Signal(sig)
	}
}

func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
