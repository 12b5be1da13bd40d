package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

type GoalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, goals []*types.Goal) ([]*types.Goal, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, goalID, userID uuid.UUID) (*types.Goal, error)
	GetByIDForUserWithDayPlans(ctx context.Context, tx *gorm.DB, goalID, userID uuid.UUID) (*types.Goal, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Goal, error)
	DeleteByIDForUser(ctx context.Context, tx *gorm.DB, goalID, userID uuid.UUID) error
}

type goalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	repoLog := baseLog.With("repo", "GoalRepo")
	return &goalRepo{db: db, log: repoLog}
}

func (gr *goalRepo) Create(ctx context.Context, tx *gorm.DB, goals []*types.Goal) ([]*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	if len(goals) == 0 {
		return []*types.Goal{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (gr *goalRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, goalID, userID uuid.UUID) (*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	var result types.Goal
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (gr *goalRepo) GetByIDForUserWithDayPlans(ctx context.Context, tx *gorm.DB, goalID, userID uuid.UUID) (*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	var result types.Goal
	if err := transaction.WithContext(ctx).
		Preload("DayPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (gr *goalRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	var results []*types.Goal
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (gr *goalRepo) DeleteByIDForUser(ctx context.Context, tx *gorm.DB, goalID, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		Delete(&types.Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
