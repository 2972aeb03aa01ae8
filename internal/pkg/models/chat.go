package models

import "time"

// ChatMessage is one message in a conversation, append-only per counterpart
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SendChatMessage is the payload for posting a new chat message
type SendChatMessage struct {
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Message    string `json:"message"`
}

// ChatHistoryEnvelope is the backend response wrapper for a conversation
type ChatHistoryEnvelope struct {
	Message  string        `json:"message"`
	Messages []ChatMessage `json:"messages"`
}
