package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DayPlan is one day of a goal. Date is always StartDate + DayNumber - 1.
// Content stays null until AI generation fills it in (or forever, when the
// goal was created without AI).
type DayPlan struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	GoalID      uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_goal_day,priority:1" json:"goal_id"`
	Goal        *Goal          `gorm:"constraint:OnDelete:CASCADE;foreignKey:GoalID;references:ID" json:"goal,omitempty"`
	DayNumber   int            `gorm:"column:day_number;not null;uniqueIndex:idx_goal_day,priority:2" json:"day_number"`
	Date        time.Time      `gorm:"column:date;not null;index" json:"date"`
	Topic       string         `gorm:"column:topic" json:"topic"`
	Content     datatypes.JSON `gorm:"column:content;type:jsonb" json:"content"`
	Completed   bool           `gorm:"column:completed;not null;default:false" json:"completed"`
	CompletedAt *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`

	Notes []*Note `gorm:"constraint:OnDelete:CASCADE;foreignKey:DayPlanID;references:ID" json:"notes,omitempty"`
}

func (DayPlan) TableName() string {
	return "day_plans"
}
