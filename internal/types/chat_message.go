package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of a tutor conversation. SessionID is a pure
// grouping key, there is no session table and no expiry.
type ChatMessage struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User         *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	SessionID    string    `gorm:"column:session_id;size:36;not null;index" json:"session_id"`
	Role         string    `gorm:"column:role;size:20;not null" json:"role"`
	Content      string    `gorm:"column:content;not null" json:"content"`
	ContextTopic string    `gorm:"column:context_topic;size:200" json:"context_topic,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
