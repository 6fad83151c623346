package registry

import (
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/taeold/gemini-cli-core-codelab/internal/tool"
)

// Registry stores tools by name and decodes model-supplied arguments into
// each tool's typed request.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]tool.Tool
	deny  []string
}

// New creates a Registry holding tools. Names in deny are declared to the
// model but every call to them fails validation.
func New(deny []string, tools ...tool.Tool) (*Registry, error) {
	r := &Registry{
		tools: make(map[string]tool.Tool),
		deny:  slices.Clone(deny),
	}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a tool. Names must be unique.
func (r *Registry) Register(t tool.Tool) error {
	name := t.Declaration().Name

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, name)
	}
	r.tools[name] = t
	return nil
}

// Declarations returns all tool schemas sorted by name.
func (r *Registry) Declarations() []tool.Declaration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	decls := make([]tool.Declaration, 0, len(r.tools))
	for _, t := range r.tools {
		decls = append(decls, t.Declaration())
	}
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].Name < decls[j].Name
	})
	return decls
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (tool.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return t, nil
}

// Decode resolves name and converts args into the tool's request struct.
// Unknown keys are rejected, numbers are coerced to the field type, and the
// request's Validate method runs if it has one.
func (r *Registry) Decode(name string, args map[string]any) (tool.Tool, any, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	if slices.Contains(r.deny, name) {
		return nil, nil, fmt.Errorf("%w: %s", ErrToolDenied, name)
	}

	req := t.NewRequest()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           req,
		TagName:          "json",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build decoder for %s: %w", name, err)
	}
	if err := decoder.Decode(args); err != nil {
		return nil, nil, &ArgumentError{Tool: name, Cause: err}
	}

	if v, ok := req.(tool.Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, nil, &ArgumentError{Tool: name, Cause: err}
		}
	}

	return t, req, nil
}
