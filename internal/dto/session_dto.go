package dto

import "time"

type CreateSessionResponse struct {
	SessionId string `json:"session_id"`
	Token     string `json:"token"`
}

type ChatTurnView struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Citations []string  `json:"citations,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionId string         `json:"session_id"`
	Messages  []ChatTurnView `json:"messages"`
}
