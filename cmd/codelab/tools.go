package main

import (
	"fmt"

	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/console"
	"github.com/taeold/gemini-cli-core-codelab/internal/scheduler"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/file"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/registry"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/fs"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/git"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/path"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/shell"
)

// createTools builds every tool over the given workspace.
func createTools(cfg *config.Config, workspaceRoot string) ([]tool.Tool, error) {
	canonicalRoot, err := path.CanonicaliseRoot(workspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize workspace root: %w", err)
	}

	osFS := fs.NewOSFileSystem()
	resolver := path.NewResolver(canonicalRoot)
	ignore, err := git.NewIgnoreMatcher(canonicalRoot, osFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load gitignore: %w", err)
	}
	executor := shell.NewOSCommandExecutor(cfg)

	return []tool.Tool{
		file.NewReadFileTool(osFS, resolver, cfg),
		file.NewWriteFileTool(osFS, resolver, cfg),
		file.NewListDirectoryTool(osFS, resolver, ignore, cfg),
		file.NewGlobTool(osFS, resolver, ignore, cfg),
		shell.NewShellTool(executor, resolver, osFS, cfg),
	}, nil
}

// toolbox is the registry plus the approval machinery built around it.
type toolbox struct {
	registry  *registry.Registry
	approver  *console.Approver
	scheduler *scheduler.Scheduler
}

func newToolbox(s *session, deps *Dependencies, opts *rootOptions) (*toolbox, error) {
	root, err := workspaceRoot(opts)
	if err != nil {
		return nil, err
	}
	tools, err := createTools(s.cfg, root)
	if err != nil {
		return nil, err
	}
	reg, err := registry.New(s.cfg.Policy.Deny, tools...)
	if err != nil {
		return nil, err
	}

	approver := console.NewApprover(deps.In, s.out)
	sched, err := scheduler.New(reg, scheduler.Options{
		Approver:       approver,
		Observer:       console.NewObserver(s.errOut),
		AutoApprove:    s.cfg.Policy.Allow,
		MaxConcurrency: s.cfg.Tools.MaxConcurrentCalls,
		Logger:         s.logger,
	})
	if err != nil {
		return nil, err
	}
	return &toolbox{registry: reg, approver: approver, scheduler: sched}, nil
}

func (t *toolbox) Close() { t.scheduler.Close() }
