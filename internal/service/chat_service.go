package service

import (
	"context"
	"strings"

	"legalchat-be/internal/constant"
	"legalchat-be/internal/dto"
	"legalchat-be/internal/entity"
	"legalchat-be/internal/pkg/logger"
	"legalchat-be/internal/pkg/serverutils"
	"legalchat-be/internal/repository/specification"
	"legalchat-be/internal/repository/unitofwork"
	"legalchat-be/pkg/agent"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AgentRunner is the slice of the legal agent the chat service needs; the
// concrete implementation lives in pkg/agent.
type AgentRunner interface {
	Run(ctx context.Context, history []agent.HistoryItem, userMessage string) (string, error)
}

// IChatService defines the chat service interface
type IChatService interface {
	CreateSession(ctx context.Context) (*dto.NewSessionResponse, error)
	GetAllSessions(ctx context.Context) (*dto.GetSessionsResponse, error)
	GetChatHistory(ctx context.Context, sessionId string) (*dto.GetHistoryResponse, error)
	SendMessage(ctx context.Context, sessionId, message string) (*dto.SendMessageResponse, error)
	EditMessage(ctx context.Context, sessionId string, messageId int64, message string) (*dto.SendMessageResponse, error)
	DeleteSession(ctx context.Context, sessionId string) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	legalAgent AgentRunner
	sysLogger  logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	legalAgent AgentRunner,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		legalAgent: legalAgent,
		sysLogger:  sysLogger,
	}
}

// CreateSession creates a new chat session with the placeholder title.
func (cs *chatService) CreateSession(ctx context.Context) (*dto.NewSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session := entity.ChatSession{
		Id:    uuid.NewString(),
		Title: constant.DefaultSessionTitle,
	}

	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return &dto.NewSessionResponse{SessionId: session.Id, Status: "success"}, nil
}

// GetAllSessions lists sessions, most recently active first.
func (cs *chatService) GetAllSessions(ctx context.Context) (*dto.GetSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.GetSessionsResponse{
		Sessions: make([]*dto.SessionSummary, 0, len(sessions)),
	}
	for _, s := range sessions {
		response.Sessions = append(response.Sessions, &dto.SessionSummary{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

// GetChatHistory returns a session's messages in insertion order. An unknown
// session id yields an empty history, not an error.
func (cs *chatService) GetChatHistory(ctx context.Context, sessionId string) (*dto.GetHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	messages, err := cs.loadHistory(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}

	response := &dto.GetHistoryResponse{
		History: make([]*dto.HistoryMessage, 0, len(messages)),
	}
	for _, m := range messages {
		response.History = append(response.History, &dto.HistoryMessage{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}

	return response, nil
}

// SendMessage runs one chat turn: retitle on first message, persist the user
// message, invoke the agent with the prior history as context, persist the
// reply.
func (cs *chatService) SendMessage(ctx context.Context, sessionId, message string) (*dto.SendMessageResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, serverutils.BadRequest("Message cannot be empty")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	history, err := cs.loadHistory(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}

	if len(history) == 0 {
		if err := uow.ChatSessionRepository().Rename(ctx, sessionId, DisplayTitle(message)); err != nil {
			return nil, err
		}
	}

	if err := cs.appendMessage(ctx, uow, sessionId, constant.ChatMessageRoleUser, message); err != nil {
		return nil, err
	}

	reply, err := cs.legalAgent.Run(ctx, toAgentHistory(history), message)
	if err != nil {
		cs.sysLogger.Error("chat", "agent invocation failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	if err := cs.appendMessage(ctx, uow, sessionId, constant.ChatMessageRoleAssistant, reply); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{Response: reply, Status: "success"}, nil
}

// EditMessage rewrites a user message in place, discards everything after it,
// and regenerates the assistant reply from the truncated history.
func (cs *chatService) EditMessage(ctx context.Context, sessionId string, messageId int64, message string) (*dto.SendMessageResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, serverutils.BadRequest("Message cannot be empty")
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ChatMessageRepository().FindOne(ctx,
		specification.ByID{ID: messageId},
		specification.ByChatSessionID{ChatSessionID: sessionId},
	)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.Role != constant.ChatMessageRoleUser {
		return nil, serverutils.NotFound("Message not found or cannot edit assistant messages")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().UpdateContent(ctx, messageId, sessionId, message); err != nil {
		return nil, err
	}
	// Forward truncation: ids are monotone in insertion order, so id > edited
	// id is exactly the conversation after the edit point.
	if err := uow.ChatMessageRepository().DeleteWhere(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.MessageIDAfter{MessageID: messageId},
	); err != nil {
		return nil, err
	}
	if err := uow.ChatSessionRepository().Touch(ctx, sessionId); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	history, err := cs.loadHistory(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}

	reply, err := cs.legalAgent.Run(ctx, toAgentHistory(history), message)
	if err != nil {
		cs.sysLogger.Error("chat", "agent invocation failed after edit", map[string]interface{}{
			"session_id": sessionId,
			"message_id": messageId,
			"error":      err.Error(),
		})
		return nil, err
	}

	if err := cs.appendMessage(ctx, uow, sessionId, constant.ChatMessageRoleAssistant, reply); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{Response: reply, Status: "success"}, nil
}

// DeleteSession removes the session and all its messages. The cascade is
// explicit: messages first, then the session row, in one transaction.
func (cs *chatService) DeleteSession(ctx context.Context, sessionId string) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewAppError(fiber.StatusInternalServerError, "Failed to delete session")
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, sessionId); err != nil {
		cs.sysLogger.Error("chat", "failed to delete session messages", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return serverutils.NewAppError(fiber.StatusInternalServerError, "Failed to delete session")
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		cs.sysLogger.Error("chat", "failed to delete session", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return serverutils.NewAppError(fiber.StatusInternalServerError, "Failed to delete session")
	}
	if err := uow.Commit(); err != nil {
		return serverutils.NewAppError(fiber.StatusInternalServerError, "Failed to delete session")
	}

	return nil
}

// --- helpers ---

// loadHistory fetches a session's messages ordered by timestamp, ids breaking
// ties so concurrent same-instant inserts keep insertion order.
func (cs *chatService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, sessionId string) ([]*entity.ChatMessage, error) {
	return uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "timestamp", Desc: false},
		specification.OrderBy{Field: "id", Desc: false},
	)
}

// appendMessage inserts a message and touches the parent session's
// updated_at as one transaction.
func (cs *chatService) appendMessage(ctx context.Context, uow unitofwork.UnitOfWork, sessionId, role, content string) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	msg := entity.ChatMessage{
		ChatSessionId: sessionId,
		Role:          role,
		Content:       content,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &msg); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Touch(ctx, sessionId); err != nil {
		return err
	}

	return uow.Commit()
}

func toAgentHistory(messages []*entity.ChatMessage) []agent.HistoryItem {
	items := make([]agent.HistoryItem, 0, len(messages))
	for _, m := range messages {
		items = append(items, agent.HistoryItem{Role: m.Role, Content: m.Content})
	}
	return items
}

// DisplayTitle derives a session title from the first user message,
// truncating to 50 characters plus an ellipsis marker when over length.
func DisplayTitle(raw string) string {
	runes := []rune(raw)
	if len(runes) > constant.SessionTitleMaxLen {
		return string(runes[:constant.SessionTitleMaxLen]) + "..."
	}
	return raw
}
