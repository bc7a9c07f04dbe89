package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"legalchat-be/internal/model"
	"legalchat-be/internal/pkg/logger"
	"legalchat-be/internal/pkg/serverutils"
	"legalchat-be/internal/repository/unitofwork"
	"legalchat-be/internal/service"
	"legalchat-be/pkg/agent"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fixedAgent struct {
	reply string
	err   error
}

func (f *fixedAgent) Run(ctx context.Context, history []agent.HistoryItem, userMessage string) (string, error) {
	return f.reply, f.err
}

func newTestApp(t *testing.T, runner service.AgentRunner) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.ChatSession{}, &model.ChatMessage{}))

	svc := service.NewChatService(unitofwork.NewRepositoryFactory(db), runner, logger.NewNopLogger())

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func createSession(t *testing.T, app *fiber.App) string {
	t.Helper()

	status, body := doJSON(t, app, "POST", "/api/new_session", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "success", body["status"])
	id, ok := body["session_id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func TestFullChatFlowOverHTTP(t *testing.T) {
	app := newTestApp(t, &fixedAgent{reply: "the legal answer"})

	sessionId := createSession(t, app)

	status, body := doJSON(t, app, "POST", "/api/chat/"+sessionId+"/message",
		map[string]string{"message": "What is consideration in contract law?"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "the legal answer", body["response"])
	assert.Equal(t, "success", body["status"])

	status, body = doJSON(t, app, "GET", "/api/chat/"+sessionId, nil)
	require.Equal(t, http.StatusOK, status)
	history, ok := body["history"].([]interface{})
	require.True(t, ok)
	require.Len(t, history, 2)
	first := history[0].(map[string]interface{})
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "What is consideration in contract law?", first["content"])

	status, body = doJSON(t, app, "GET", "/api/sessions", nil)
	require.Equal(t, http.StatusOK, status)
	sessions, ok := body["sessions"].([]interface{})
	require.True(t, ok)
	require.Len(t, sessions, 1)
	summary := sessions[0].(map[string]interface{})
	assert.Equal(t, sessionId, summary["id"])
	assert.Equal(t, "What is consideration in contract law?", summary["title"])
}

func TestSendMessageEmptyBodyIs400(t *testing.T) {
	app := newTestApp(t, &fixedAgent{reply: "unused"})
	sessionId := createSession(t, app)

	status, body := doJSON(t, app, "POST", "/api/chat/"+sessionId+"/message",
		map[string]string{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Message cannot be empty", body["error"])
}

func TestSendMessageAgentFailureIs500(t *testing.T) {
	app := newTestApp(t, &fixedAgent{err: errors.New("model unavailable")})
	sessionId := createSession(t, app)

	status, body := doJSON(t, app, "POST", "/api/chat/"+sessionId+"/message",
		map[string]string{"message": "a question"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Contains(t, body["details"], "model unavailable")
}

func TestEditMessageFlowOverHTTP(t *testing.T) {
	app := newTestApp(t, &fixedAgent{reply: "answer"})
	sessionId := createSession(t, app)

	status, _ := doJSON(t, app, "POST", "/api/chat/"+sessionId+"/message",
		map[string]string{"message": "original question"})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, "GET", "/api/chat/"+sessionId, nil)
	require.Equal(t, http.StatusOK, status)
	history := body["history"].([]interface{})
	userId := int64(history[0].(map[string]interface{})["id"].(float64))
	assistantId := int64(history[1].(map[string]interface{})["id"].(float64))

	status, body = doJSON(t, app, "PUT",
		"/api/chat/"+sessionId+"/edit/"+itoa(userId),
		map[string]string{"message": "revised question"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "answer", body["response"])
	assert.Equal(t, "success", body["status"])

	// Assistant messages cannot be edited.
	status, body = doJSON(t, app, "PUT",
		"/api/chat/"+sessionId+"/edit/"+itoa(assistantId),
		map[string]string{"message": "nope"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Message not found or cannot edit assistant messages", body["error"])

	// Non-numeric message ids behave like unknown messages.
	status, body = doJSON(t, app, "PUT",
		"/api/chat/"+sessionId+"/edit/not-a-number",
		map[string]string{"message": "nope"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Message not found or cannot edit assistant messages", body["error"])
}

func TestDeleteSessionOverHTTP(t *testing.T) {
	app := newTestApp(t, &fixedAgent{reply: "answer"})
	sessionId := createSession(t, app)

	status, body := doJSON(t, app, "DELETE", "/api/delete_session/"+sessionId, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", body["status"])

	// History of the deleted session is empty, not an error.
	status, body = doJSON(t, app, "GET", "/api/chat/"+sessionId, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["history"])
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
