package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"legalchat-be/internal/constant"
	"legalchat-be/pkg/llm"
	"legalchat-be/pkg/tool"
)

// maxToolRounds bounds the tool-call loop for one agent turn. When exhausted
// the model gets one final text-only call.
const maxToolRounds = 5

// HistoryItem is one prior turn handed to the agent as context.
type HistoryItem struct {
	Role    string
	Content string
}

// LegalAgent wraps one agent turn: fixed legal instruction set, a trailing
// slice of conversation context, the equipped tool set, and the blocking
// tool-call loop against the model.
type LegalAgent struct {
	provider llm.LLMProvider
	registry *tool.Registry
}

func New(provider llm.LLMProvider, registry *tool.Registry) *LegalAgent {
	return &LegalAgent{
		provider: provider,
		registry: registry,
	}
}

// Run executes one full agent turn and returns the generated text. The call
// blocks for the whole turn, including any tool invocations the model makes.
func (a *LegalAgent) Run(ctx context.Context, history []HistoryItem, userMessage string) (string, error) {
	messages := []llm.Message{
		{Role: "system", Content: BuildInstructions(history)},
		{Role: "user", Content: userMessage},
	}

	tools := a.registry.Definitions()

	for round := 0; round < maxToolRounds; round++ {
		reply, err := a.provider.ChatWithTools(ctx, messages, tools, llm.WithTemperature(0.1))
		if err != nil {
			return "", fmt.Errorf("agent invocation failed: %w", err)
		}

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		messages = append(messages, llm.Message{
			Role:      "assistant",
			Content:   reply.Content,
			ToolCalls: reply.ToolCalls,
		})

		for _, tc := range reply.ToolCalls {
			messages = append(messages, llm.Message{
				Role:       "tool",
				ToolCallID: tc.ID,
				Name:       tc.Name,
				Content:    a.executeToolCall(ctx, tc),
			})
		}
	}

	// Tool budget exhausted: force a final text answer.
	return a.provider.Chat(ctx, messages, llm.WithTemperature(0.1))
}

func (a *LegalAgent) executeToolCall(ctx context.Context, tc llm.ToolCall) string {
	t, ok := a.registry.Get(tc.Name)
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q", tc.Name)
	}

	args := map[string]interface{}{}
	if tc.Arguments != "" {
		// Malformed arguments are the model's fault; run the tool with what
		// parsed rather than failing the turn.
		_ = json.Unmarshal([]byte(tc.Arguments), &args)
	}

	return t.Execute(ctx, args)
}

// BuildInstructions assembles the system prompt: persona, the fixed legal
// instruction set, and a context block of the trailing history (up to the
// last 5 messages, first 200 characters each).
func BuildInstructions(history []HistoryItem) string {
	var sb strings.Builder
	sb.WriteString(constant.LegalAgentDescription)
	sb.WriteString("\n\n")
	for _, instruction := range constant.LegalAgentInstructions {
		sb.WriteString(instruction)
		sb.WriteString("\n")
	}

	if block := BuildContextBlock(history); block != "" {
		sb.WriteString("\nContext from previous conversation:\n")
		sb.WriteString(block)
	}

	return sb.String()
}

// BuildContextBlock renders the trailing history slice, clamped per message.
func BuildContextBlock(history []HistoryItem) string {
	if len(history) == 0 {
		return ""
	}

	start := 0
	if len(history) > constant.AgentContextMessages {
		start = len(history) - constant.AgentContextMessages
	}

	var sb strings.Builder
	for _, msg := range history[start:] {
		content := msg.Content
		if runes := []rune(content); len(runes) > constant.AgentContextCharsPerMessage {
			content = string(runes[:constant.AgentContextCharsPerMessage])
		}
		sb.WriteString(titleCase(msg.Role))
		sb.WriteString(": ")
		sb.WriteString(content)
		sb.WriteString("...\n")
	}
	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
