package tool

import (
	"context"
	"sync"

	"legalchat-be/pkg/llm"
)

// Tool is a capability the agent may invoke during a turn. Execute always
// returns a usable string: failures are reported inside the text, never as a
// Go error, because the model's reasoning loop expects a result either way.
type Tool interface {
	// Name returns the tool identifier exposed to the model
	Name() string
	// Description tells the model what the tool provides and when to use it
	Description() string
	// Schema returns the parameters as JSON Schema (nil for no-arg tools)
	Schema() map[string]interface{}
	// Execute runs the tool with model-supplied arguments
	Execute(ctx context.Context, args map[string]interface{}) string
}

// Registry holds the tool set equipping one agent.
type Registry struct {
	mu    sync.RWMutex
	order []string
	tools map[string]Tool
}

func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tools[name] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, exists := r.tools[name]
	return t, exists
}

// Definitions lists the registered tools in registration order, in the shape
// the LLM provider sends to the model.
func (r *Registry) Definitions() []llm.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]llm.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Schema(),
		})
	}
	return defs
}
