package entity

import (
	"time"
)

type ChatSession struct {
	Id        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
