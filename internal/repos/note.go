package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

type NoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error)
	ListByDayPlanID(ctx context.Context, tx *gorm.DB, dayPlanID uuid.UUID) ([]*types.Note, error)
	DeleteByDayPlanIDs(ctx context.Context, tx *gorm.DB, dayPlanIDs []uuid.UUID) error
}

type noteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoteRepo(db *gorm.DB, baseLog *logger.Logger) NoteRepo {
	repoLog := baseLog.With("repo", "NoteRepo")
	return &noteRepo{db: db, log: repoLog}
}

func (nr *noteRepo) Create(ctx context.Context, tx *gorm.DB, notes []*types.Note) ([]*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if len(notes) == 0 {
		return []*types.Note{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (nr *noteRepo) ListByDayPlanID(ctx context.Context, tx *gorm.DB, dayPlanID uuid.UUID) ([]*types.Note, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var results []*types.Note
	if err := transaction.WithContext(ctx).
		Where("day_plan_id = ?", dayPlanID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *noteRepo) DeleteByDayPlanIDs(ctx context.Context, tx *gorm.DB, dayPlanIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if len(dayPlanIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("day_plan_id IN ?", dayPlanIDs).
		Delete(&types.Note{}).Error
}
