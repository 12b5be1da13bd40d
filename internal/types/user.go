package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	AvatarURL string    `gorm:"column:avatar_url" json:"avatar_url"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Goals        []*Goal        `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"goals,omitempty"`
	ChatMessages []*ChatMessage `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"chat_messages,omitempty"`
}

func (User) TableName() string {
	return "users"
}
