package path

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	root, err := CanonicaliseRoot(t.TempDir())
	require.NoError(t, err)
	return NewResolver(root), root
}

func TestAbs(t *testing.T) {
	resolver, root := newTestResolver(t)

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
	}{
		{name: "relative path within workspace", input: "src/main.go", expected: filepath.Join(root, "src/main.go")},
		{name: "absolute path within workspace", input: filepath.Join(root, "a.txt"), expected: filepath.Join(root, "a.txt")},
		{name: "path with dots within workspace", input: "src/../src/main.go", expected: filepath.Join(root, "src/main.go")},
		{name: "workspace root", input: ".", expected: root},
		{name: "escape attempt via parent dots", input: "../../../etc/passwd", err: ErrOutsideWorkspace},
		{name: "absolute path outside workspace", input: "/etc/passwd", err: ErrOutsideWorkspace},
		{name: "sibling with shared prefix", input: root + "-other/file", err: ErrOutsideWorkspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.Abs(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAbs_SymlinkEscape_Rejected(t *testing.T) {
	resolver, root := newTestResolver(t)
	outside := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link")))

	_, err := resolver.Abs("link/secret.txt")

	assert.ErrorIs(t, err, ErrOutsideWorkspace)
}

func TestRel(t *testing.T) {
	resolver, root := newTestResolver(t)

	rel, err := resolver.Rel(filepath.Join(root, "dir", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "dir/file.txt", rel)

	rel, err = resolver.Rel(root)
	require.NoError(t, err)
	assert.Equal(t, ".", rel)
}

func TestNewResolver_EmptyRootPanics(t *testing.T) {
	assert.Panics(t, func() { NewResolver("") })
}

func TestCanonicaliseRoot_File_ReturnsError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := CanonicaliseRoot(file)

	var rootErr *WorkspaceRootError
	require.ErrorAs(t, err, &rootErr)
	assert.ErrorIs(t, err, ErrNotADirectory)
}
