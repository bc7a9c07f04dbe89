package model

import (
	"time"
)

// ChatMessage rows carry an autoincrement integer id. Insertion order equals
// id order, which the edit/truncation flow relies on.
type ChatMessage struct {
	Id            int64     `gorm:"primaryKey;autoIncrement"`
	ChatSessionId string    `gorm:"type:text;not null;index"`
	Role          string    `gorm:"type:varchar(50);not null"`
	Content       string    `gorm:"type:text;not null"`
	Timestamp     time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
