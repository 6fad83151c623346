package shell

import (
	"context"
	"os"
	"time"
)

// commandExecutor runs a process and collects its output.
type commandExecutor interface {
	RunWithTimeout(ctx context.Context, command []string, dir string, timeout time.Duration) (*ExecResult, error)
}

// pathResolver defines workspace path resolution operations.
type pathResolver interface {
	Abs(path string) (string, error)
	Rel(path string) (string, error)
}

// dirStatter checks the working directory before running.
type dirStatter interface {
	Stat(path string) (os.FileInfo, error)
}
