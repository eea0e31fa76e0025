// Package tool describes session-scoped tools in the function-calling shape
// consumed by LLM frameworks.
//
// A Definition carries the tool name, a description aimed at the model, and a
// JSON Schema object for its parameters. A Registry keeps the definitions in
// registration order and renders them as a manifest.
package tool

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

var (
	ErrInvalidDefinition = errors.New("tool.invalid_definition")
	ErrDuplicateTool     = errors.New("tool.duplicate")
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// Definition describes a callable tool.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Method      string         `json:"-"`
	Path        string         `json:"-"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// ToolDefinition wraps a Definition as a function tool.
type ToolDefinition struct {
	Type     string     `json:"type"` // "function"
	Function Definition `json:"function"`
	Endpoint *Endpoint  `json:"endpoint,omitempty"`
}

// Endpoint tells HTTP callers where the tool is served.
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Validate checks the definition is usable in a manifest.
func (d Definition) Validate() error {
	if !namePattern.MatchString(d.Name) {
		return fmt.Errorf("%w: name %q must be snake_case", ErrInvalidDefinition, d.Name)
	}
	if d.Description == "" {
		return fmt.Errorf("%w: %s: description is required", ErrInvalidDefinition, d.Name)
	}
	if d.Parameters == nil {
		return fmt.Errorf("%w: %s: parameters schema is required", ErrInvalidDefinition, d.Name)
	}
	if typ, _ := d.Parameters["type"].(string); typ != "object" {
		return fmt.Errorf("%w: %s: parameters must be an object schema", ErrInvalidDefinition, d.Name)
	}
	return nil
}

// Registry is an ordered, concurrency-safe set of tool definitions.
type Registry struct {
	mu    sync.RWMutex
	order []string
	defs  map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a definition. Names must be unique.
func (r *Registry) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, def.Name)
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(defs ...Definition) {
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
}

// List returns all definitions as function tools, in registration order.
func (r *Registry) List() []ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		def := r.defs[name]
		td := ToolDefinition{Type: "function", Function: def}
		if def.Path != "" {
			td.Endpoint = &Endpoint{Method: def.Method, Path: def.Path}
		}
		out = append(out, td)
	}
	return out
}
