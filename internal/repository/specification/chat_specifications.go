package specification

import (
	"gorm.io/gorm"
)

// ByChatSessionID scopes a query to one session's rows.
type ByChatSessionID struct {
	ChatSessionID string
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// MessageIDAfter selects messages strictly after the given id. Ids are
// assigned monotonically at insert, so this is the chronological tail.
type MessageIDAfter struct {
	MessageID int64
}

func (s MessageIDAfter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id > ?", s.MessageID)
}
