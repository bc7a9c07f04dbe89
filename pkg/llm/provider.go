package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format.
// Role is one of "system", "user", "assistant", "tool".
type Message struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall // present on assistant messages that request tool use
	ToolCallID string     // present on "tool" messages carrying a tool result
	Name       string     // tool name on "tool" messages
}

// ToolCall is a model-issued request to run one tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON object, as emitted by the model
}

// ToolDefinition describes a callable tool to the model.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// Reply is one assistant turn: either final text or a batch of tool calls.
type Reply struct {
	Content   string
	ToolCalls []ToolCall
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response text
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// ChatWithTools sends a chat history plus tool definitions; the reply may
	// carry tool calls instead of text
	ChatWithTools(ctx context.Context, history []Message, tools []ToolDefinition, options ...Option) (*Reply, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}
