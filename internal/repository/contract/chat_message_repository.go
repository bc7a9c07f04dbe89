package contract

import (
	"context"

	"legalchat-be/internal/entity"
	"legalchat-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	UpdateContent(ctx context.Context, id int64, sessionId, content string) error
	DeleteWhere(ctx context.Context, specs ...specification.Specification) error
	DeleteAllBySessionId(ctx context.Context, sessionId string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
