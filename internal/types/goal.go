package types

import (
	"time"

	"github.com/google/uuid"
)

// Goal spans TotalDays consecutive days starting at StartDate. Exactly
// TotalDays DayPlan rows exist for it from the moment it is created.
type Goal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	TotalDays   int       `gorm:"column:total_days;not null" json:"total_days"`
	StartDate   time.Time `gorm:"column:start_date;not null" json:"start_date"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	DayPlans []*DayPlan `gorm:"constraint:OnDelete:CASCADE;foreignKey:GoalID;references:ID" json:"day_plans,omitempty"`
}

func (Goal) TableName() string {
	return "goals"
}
