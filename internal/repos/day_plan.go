package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

type DayPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plans []*types.DayPlan) ([]*types.DayPlan, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.DayPlan, error)
	GetByDateForUser(ctx context.Context, tx *gorm.DB, date time.Time, userID uuid.UUID) (*types.DayPlan, error)
	ListByGoalID(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) ([]*types.DayPlan, error)
	UpdateContents(ctx context.Context, tx *gorm.DB, plans []*types.DayPlan) error
	MarkCompleted(ctx context.Context, tx *gorm.DB, planID uuid.UUID, at time.Time) error
	DeleteByGoalID(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) error
}

type dayPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDayPlanRepo(db *gorm.DB, baseLog *logger.Logger) DayPlanRepo {
	repoLog := baseLog.With("repo", "DayPlanRepo")
	return &dayPlanRepo{db: db, log: repoLog}
}

func (dr *dayPlanRepo) Create(ctx context.Context, tx *gorm.DB, plans []*types.DayPlan) ([]*types.DayPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if len(plans) == 0 {
		return []*types.DayPlan{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (dr *dayPlanRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, planID, userID uuid.UUID) (*types.DayPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var result types.DayPlan
	if err := transaction.WithContext(ctx).
		Joins("JOIN goals ON goals.id = day_plans.goal_id").
		Where("day_plans.id = ? AND goals.user_id = ?", planID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dr *dayPlanRepo) GetByDateForUser(ctx context.Context, tx *gorm.DB, date time.Time, userID uuid.UUID) (*types.DayPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var result types.DayPlan
	if err := transaction.WithContext(ctx).
		Joins("JOIN goals ON goals.id = day_plans.goal_id").
		Where("day_plans.date = ? AND goals.user_id = ?", date, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dr *dayPlanRepo) ListByGoalID(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) ([]*types.DayPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var results []*types.DayPlan
	if err := transaction.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("day_number ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateContents flushes the content column of every plan that has one. Runs
// as a single transaction so a batch checkpoint is all-or-nothing.
func (dr *dayPlanRepo) UpdateContents(ctx context.Context, tx *gorm.DB, plans []*types.DayPlan) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if len(plans) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Transaction(func(innerTx *gorm.DB) error {
		for _, plan := range plans {
			if plan == nil || plan.Content == nil {
				continue
			}
			if err := innerTx.
				Model(&types.DayPlan{}).
				Where("id = ?", plan.ID).
				Update("content", plan.Content).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (dr *dayPlanRepo) MarkCompleted(ctx context.Context, tx *gorm.DB, planID uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.DayPlan{}).
		Where("id = ?", planID).
		Updates(map[string]interface{}{
			"completed":    true,
			"completed_at": at,
		}).Error
}

func (dr *dayPlanRepo) DeleteByGoalID(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return transaction.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Delete(&types.DayPlan{}).Error
}
