package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taeold/gemini-cli-core-codelab/internal/config"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/fs"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/git"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool/service/path"
)

type workspace struct {
	root     string
	fs       *fs.OSFileSystem
	resolver *path.Resolver
	cfg      *config.Config
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	root, err := path.CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	return &workspace{
		root:     root,
		fs:       fs.NewOSFileSystem(),
		resolver: path.NewResolver(root),
		cfg:      config.DefaultConfig(),
	}
}

func (w *workspace) write(t *testing.T, rel, content string) string {
	t.Helper()
	abs := filepath.Join(w.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	return abs
}

func (w *workspace) ignore(t *testing.T) *git.IgnoreMatcher {
	t.Helper()
	m, err := git.NewIgnoreMatcher(w.root, w.fs)
	require.NoError(t, err)
	return m
}
