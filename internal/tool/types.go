package tool

import (
	"context"

	"github.com/invopop/jsonschema"
)

// Declaration declares a tool's function signature for the LLM.
type Declaration struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

// ConfirmationKind tells the console how to present a confirmation.
type ConfirmationKind string

const (
	ConfirmEdit ConfirmationKind = "edit" // Description is a diff
	ConfirmExec ConfirmationKind = "exec" // Description is a literal command
	ConfirmInfo ConfirmationKind = "info"
)

// ConfirmationDetails describes a side effect that needs user approval.
type ConfirmationDetails struct {
	Kind        ConfirmationKind
	Title       string
	Description string
}

// Result is returned by tools after execution.
type Result struct {
	// LLMContent is sent back to the model.
	LLMContent string
	// Display is a short human-readable summary for the console.
	Display string
}

// Validator is implemented by request types that check their own fields.
type Validator interface {
	Validate() error
}

// Tool is the contract every registered tool implements.
type Tool interface {
	// Declaration returns the tool's schema for the LLM.
	Declaration() Declaration

	// NewRequest returns a pointer to a zero request struct (e.g. &ReadFileRequest{}).
	NewRequest() any

	// Confirmation reports whether req needs approval before running.
	// A nil result means it can execute directly.
	Confirmation(ctx context.Context, req any) (*ConfirmationDetails, error)

	// Execute runs the tool. Tools return errors for failures of the side
	// effect itself; ctx cancellation must abort promptly.
	Execute(ctx context.Context, req any) (*Result, error)
}

// Targeter is implemented by tools that mutate a single named resource.
// Calls with the same target are never executed concurrently.
type Targeter interface {
	Target(req any) string
}
