package types

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DayPlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"day_plan_id"`
	DayPlan   *DayPlan  `gorm:"constraint:OnDelete:CASCADE;foreignKey:DayPlanID;references:ID" json:"day_plan,omitempty"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}
