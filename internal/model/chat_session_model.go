package model

import (
	"time"
)

type ChatSession struct {
	Id        string    `gorm:"type:text;primaryKey"`
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
