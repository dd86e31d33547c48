package entity

import "time"

// ChatTurn is one message in a session transcript. Citations keep the order
// the grounding metadata reported them in.
type ChatTurn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Citations []string  `json:"citations,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
