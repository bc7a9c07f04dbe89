package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"legalchat-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *GroqProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGroqProvider(srv.URL, "test-key", "test-model")
}

func TestChatWithToolsSendsOpenAIPayload(t *testing.T) {
	var captured chatRequest
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"role": "assistant", "content": "an answer"}},
			},
		})
	})

	reply, err := p.ChatWithTools(context.Background(),
		[]llm.Message{
			{Role: "system", Content: "instructions"},
			{Role: "user", Content: "a question"},
		},
		[]llm.ToolDefinition{{Name: "web_search", Description: "search", Parameters: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"query": map[string]interface{}{"type": "string"}},
		}}},
		llm.WithTemperature(0.1),
	)
	require.NoError(t, err)
	assert.Equal(t, "an answer", reply.Content)
	assert.Empty(t, reply.ToolCalls)

	assert.Equal(t, "test-model", captured.Model)
	assert.Equal(t, 0.1, captured.Temperature)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	require.Len(t, captured.Tools, 1)
	assert.Equal(t, "function", captured.Tools[0].Type)
	assert.Equal(t, "web_search", captured.Tools[0].Function.Name)
}

func TestChatWithToolsParsesToolCalls(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{
					"role": "assistant",
					"tool_calls": []map[string]interface{}{
						{
							"id":   "call_abc",
							"type": "function",
							"function": map[string]interface{}{
								"name":      "law_notes_scraper",
								"arguments": "{}",
							},
						},
					},
				}},
			},
		})
	})

	reply, err := p.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "q"}}, nil)
	require.NoError(t, err)
	require.Len(t, reply.ToolCalls, 1)
	assert.Equal(t, "call_abc", reply.ToolCalls[0].ID)
	assert.Equal(t, "law_notes_scraper", reply.ToolCalls[0].Name)
	assert.Equal(t, "{}", reply.ToolCalls[0].Arguments)
}

func TestChatWithToolsErrorStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limit"}`))
	})

	_, err := p.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "q"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limit")
}

func TestChatWithToolsNoChoices(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := p.ChatWithTools(context.Background(), []llm.Message{{Role: "user", Content: "q"}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestEnsureSchema(t *testing.T) {
	filled := ensureSchema(nil)
	assert.Equal(t, "object", filled["type"])
	assert.NotNil(t, filled["properties"])

	passthrough := map[string]interface{}{"type": "object", "properties": map[string]interface{}{}}
	assert.Equal(t, passthrough, ensureSchema(passthrough))

	missing := ensureSchema(map[string]interface{}{"properties": map[string]interface{}{}})
	assert.Equal(t, "object", missing["type"])
}
