package entity

import (
	"time"
)

type ChatMessage struct {
	Id            int64
	ChatSessionId string
	Role          string
	Content       string
	Timestamp     time.Time
}
