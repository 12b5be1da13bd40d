package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/normalization"
	"github.com/yungbote/goal-achiever-backend/internal/repos"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

type DayPlanService interface {
	GetPlanByDate(ctx context.Context, userID uuid.UUID, dateStr string) (*types.DayPlan, error)
	CompletePlan(ctx context.Context, userID, planID uuid.UUID) (*types.DayPlan, error)
	AddNote(ctx context.Context, userID, planID uuid.UUID, content string) (*types.Note, error)
	ListNotes(ctx context.Context, userID, planID uuid.UUID) ([]*types.Note, error)
}

type dayPlanService struct {
	db          *gorm.DB
	log         *logger.Logger
	dayPlanRepo repos.DayPlanRepo
	noteRepo    repos.NoteRepo
}

func NewDayPlanService(db *gorm.DB, log *logger.Logger, dayPlanRepo repos.DayPlanRepo, noteRepo repos.NoteRepo) DayPlanService {
	return &dayPlanService{
		db:          db,
		log:         log.With("service", "DayPlanService"),
		dayPlanRepo: dayPlanRepo,
		noteRepo:    noteRepo,
	}
}

func (ds *dayPlanService) GetPlanByDate(ctx context.Context, userID uuid.UUID, dateStr string) (*types.DayPlan, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return ds.dayPlanRepo.GetByDateForUser(ctx, nil, date.UTC(), userID)
}

func (ds *dayPlanService) CompletePlan(ctx context.Context, userID, planID uuid.UUID) (*types.DayPlan, error) {
	plan, err := ds.dayPlanRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := ds.dayPlanRepo.MarkCompleted(ctx, nil, plan.ID, now); err != nil {
		return nil, fmt.Errorf("Failed to mark plan complete: %w", err)
	}
	plan.Completed = true
	plan.CompletedAt = &now
	return plan, nil
}

func (ds *dayPlanService) AddNote(ctx context.Context, userID, planID uuid.UUID, content string) (*types.Note, error) {
	content = normalization.TrimInputString(content)
	if content == "" {
		return nil, fmt.Errorf("Note content cannot be empty")
	}
	plan, err := ds.dayPlanRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, err
	}
	note := &types.Note{
		ID:        uuid.New(),
		DayPlanID: plan.ID,
		Content:   content,
	}
	if _, err := ds.noteRepo.Create(ctx, nil, []*types.Note{note}); err != nil {
		return nil, fmt.Errorf("Failed to create note: %w", err)
	}
	return note, nil
}

func (ds *dayPlanService) ListNotes(ctx context.Context, userID, planID uuid.UUID) ([]*types.Note, error) {
	plan, err := ds.dayPlanRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, err
	}
	return ds.noteRepo.ListByDayPlanID(ctx, nil, plan.ID)
}
