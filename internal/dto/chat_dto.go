package dto

import (
	"time"
)

// Response bodies mirror the public API surface exactly; the frontend depends
// on these field names.

type NewSessionResponse struct {
	SessionId string `json:"session_id"`
	Status    string `json:"status"`
}

type SessionSummary struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GetSessionsResponse struct {
	Sessions []*SessionSummary `json:"sessions"`
}

type HistoryMessage struct {
	Id        int64     `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type GetHistoryResponse struct {
	History []*HistoryMessage `json:"history"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

type EditMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type DeleteSessionResponse struct {
	Status string `json:"status"`
}
