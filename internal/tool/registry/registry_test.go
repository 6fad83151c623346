package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

type echoRequest struct {
	Message string `json:"message"`
	Repeat  int    `json:"repeat,omitempty"`
}

func (r *echoRequest) Validate() error {
	if r.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

type echoTool struct {
	name string
}

func (e *echoTool) Declaration() tool.Declaration {
	return tool.Declaration{Name: e.name, Parameters: tool.SchemaFor[echoRequest]()}
}

func (e *echoTool) NewRequest() any { return &echoRequest{} }

func (e *echoTool) Confirmation(ctx context.Context, req any) (*tool.ConfirmationDetails, error) {
	return nil, nil
}

func (e *echoTool) Execute(ctx context.Context, req any) (*tool.Result, error) {
	return &tool.Result{LLMContent: req.(*echoRequest).Message}, nil
}

func TestDeclarations_SortedByName(t *testing.T) {
	r, err := New(nil, &echoTool{name: "zeta"}, &echoTool{name: "alpha"})
	require.NoError(t, err)

	decls := r.Declarations()

	require.Len(t, decls, 2)
	assert.Equal(t, "alpha", decls[0].Name)
	assert.Equal(t, "zeta", decls[1].Name)
}

func TestNew_DuplicateName_ReturnsError(t *testing.T) {
	_, err := New(nil, &echoTool{name: "echo"}, &echoTool{name: "echo"})

	assert.ErrorIs(t, err, ErrDuplicateTool)
}

func TestDecode_CoercesNumbers(t *testing.T) {
	r, _ := New(nil, &echoTool{name: "echo"})

	_, req, err := r.Decode("echo", map[string]any{"message": "hi", "repeat": float64(3)})

	require.NoError(t, err)
	assert.Equal(t, &echoRequest{Message: "hi", Repeat: 3}, req)
}

func TestDecode_UnknownTool(t *testing.T) {
	r, _ := New(nil)

	_, _, err := r.Decode("nope", nil)

	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestDecode_UnknownKey_ReturnsArgumentError(t *testing.T) {
	r, _ := New(nil, &echoTool{name: "echo"})

	_, _, err := r.Decode("echo", map[string]any{"message": "hi", "colour": "red"})

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "echo", argErr.Tool)
}

func TestDecode_ValidateFailure_ReturnsArgumentError(t *testing.T) {
	r, _ := New(nil, &echoTool{name: "echo"})

	_, _, err := r.Decode("echo", map[string]any{})

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Contains(t, err.Error(), "message is required")
}

func TestDecode_DeniedTool(t *testing.T) {
	r, _ := New([]string{"echo"}, &echoTool{name: "echo"})

	_, _, err := r.Decode("echo", map[string]any{"message": "hi"})

	assert.ErrorIs(t, err, ErrToolDenied)
}
