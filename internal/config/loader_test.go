package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_JSONPartialOverride_MergesWithDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/codelab/config.json": []byte(`{"workflow": {"max_rounds": 7}}`),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Workflow.MaxRounds)
	// Untouched keys keep their defaults
	assert.Equal(t, "gemini-2.5-flash", cfg.Model.Name)
	assert.Equal(t, 120, cfg.Tools.DefaultShellTimeout)
	assert.Contains(t, cfg.Policy.Allow, "read_file")
}

func TestLoad_YAMLFile_IsParsed(t *testing.T) {
	yamlConfig := `
model:
  name: gemini-2.5-pro
  include_thoughts: false
policy:
  allow: [read_file]
  deny: [run_shell_command]
`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/codelab/config.yaml": []byte(yamlConfig),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model.Name)
	assert.False(t, cfg.Model.IncludeThoughts)
	assert.Equal(t, []string{"run_shell_command"}, cfg.Policy.Deny)
	assert.Equal(t, 20, cfg.Workflow.MaxRounds)
}

func TestLoad_JSONTakesPrecedenceOverYAML(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/codelab/config.json": []byte(`{"workflow": {"max_rounds": 3}}`),
			"/home/user/.config/codelab/config.yaml": []byte("workflow:\n  max_rounds: 9\n"),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workflow.MaxRounds)
}

func TestLoad_ExplicitZeroOverridesDefault(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/codelab/config.json": []byte(`{"policy": {"allow": []}}`),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Policy.Allow)
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{HomeDirErr: errors.New("no home")}

	cfg, err := NewLoaderWithFS(fs).Load()

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Workflow.MaxRounds)
}

// --- ERROR TESTS ---

func TestLoad_MalformedJSON_ReturnsParseError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/codelab/config.json": []byte(`{"workflow": `),
		},
	}

	cfg, err := NewLoaderWithFS(fs).Load()

	assert.Nil(t, cfg)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestLoad_PermissionDenied_ReturnsReadError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}

	_, err := NewLoaderWithFS(fs).Load()

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestLoad_InvalidValues_ReturnsValidationError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/codelab/config.json": []byte(`{"workflow": {"max_rounds": 0}}`),
		},
	}

	_, err := NewLoaderWithFS(fs).Load()

	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "workflow.max_rounds must be >= 1")
}

func TestLoadFile_Missing_WrapsErrNotExist(t *testing.T) {
	fs := &MockFileSystem{Files: map[string][]byte{}}

	_, err := NewLoaderWithFS(fs).LoadFile("/etc/codelab.json")

	assert.ErrorIs(t, err, os.ErrNotExist)
}
