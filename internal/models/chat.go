package models

import "time"

// Message roles stored in chat_messages.role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one stored message in a user's conversation.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse is the reply from the AI chat plus quota accounting.
type ChatResponse struct {
	Reply         string `json:"reply"`
	QuestionsUsed int    `json:"questions_used"`
	QuestionsLeft int    `json:"questions_left"`
}

// HistoryEntry is one message as returned by the history endpoint.
type HistoryEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
