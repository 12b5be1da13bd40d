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

const (
	MinGoalDays = 1
	MaxGoalDays = 365
)

type CreateGoalInput struct {
	Title       string
	Description string
	TotalDays   int
	StartDate   string
	UseAI       bool
}

type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*types.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*types.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
}

type goalService struct {
	db           *gorm.DB
	log          *logger.Logger
	goalRepo     repos.GoalRepo
	dayPlanRepo  repos.DayPlanRepo
	noteRepo     repos.NoteRepo
	planGen      PlanGeneratorService
	batchFetcher ContentBatchFetcher
}

func NewGoalService(
	db *gorm.DB,
	log *logger.Logger,
	goalRepo repos.GoalRepo,
	dayPlanRepo repos.DayPlanRepo,
	noteRepo repos.NoteRepo,
	planGen PlanGeneratorService,
	batchFetcher ContentBatchFetcher,
) GoalService {
	return &goalService{
		db:           db,
		log:          log.With("service", "GoalService"),
		goalRepo:     goalRepo,
		dayPlanRepo:  dayPlanRepo,
		noteRepo:     noteRepo,
		planGen:      planGen,
		batchFetcher: batchFetcher,
	}
}

// CreateGoal creates a goal together with exactly TotalDays day-plan rows,
// synchronously. When AI is requested the outline topics come from the
// generator (which never fails) and the per-day content is filled in by the
// batch fetcher right after the rows are durable.
func (gs *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*types.Goal, error) {
	title := normalization.TrimInputString(input.Title)
	if title == "" {
		return nil, fmt.Errorf("A title is required to create a goal")
	}
	if input.TotalDays < MinGoalDays || input.TotalDays > MaxGoalDays {
		return nil, fmt.Errorf("total_days must be between %d and %d", MinGoalDays, MaxGoalDays)
	}
	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if input.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", input.StartDate)
		if err != nil {
			return nil, fmt.Errorf("start_date must be formatted as YYYY-MM-DD")
		}
		startDate = parsed.UTC()
	}

	goal := &types.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: normalization.TrimInputString(input.Description),
		TotalDays:   input.TotalDays,
		StartDate:   startDate,
	}

	var topics []string
	if input.UseAI {
		topics = gs.planGen.GenerateOutline(ctx, goal.Title, goal.Description, goal.TotalDays)
	} else {
		topics = make([]string, goal.TotalDays)
		for i := range topics {
			topics[i] = fmt.Sprintf("Daily progress for %s", goal.Title)
		}
	}

	plans := make([]*types.DayPlan, 0, goal.TotalDays)
	for i := 0; i < goal.TotalDays; i++ {
		plans = append(plans, &types.DayPlan{
			ID:        uuid.New(),
			GoalID:    goal.ID,
			DayNumber: i + 1,
			Date:      startDate.AddDate(0, 0, i),
			Topic:     topics[i],
		})
	}

	if err := gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gs.goalRepo.Create(ctx, tx, []*types.Goal{goal}); err != nil {
			return fmt.Errorf("Failed to create goal: %w", err)
		}
		if _, err := gs.dayPlanRepo.Create(ctx, tx, plans); err != nil {
			return fmt.Errorf("Failed to create day plans: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if input.UseAI {
		gs.batchFetcher.FetchAll(ctx, goal, plans)
	}

	goal.DayPlans = plans
	return goal, nil
}

func (gs *goalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*types.Goal, error) {
	return gs.goalRepo.ListByUserID(ctx, nil, userID)
}

func (gs *goalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*types.Goal, error) {
	return gs.goalRepo.GetByIDForUserWithDayPlans(ctx, nil, goalID, userID)
}

// DeleteGoal removes the goal and all dependent rows in one transaction.
// Postgres would cascade via the FK DDL; deleting children explicitly keeps
// the sqlite dev/test backend honest too.
func (gs *goalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	return gs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := gs.goalRepo.GetByIDForUser(ctx, tx, goalID, userID); err != nil {
			return err
		}
		plans, err := gs.dayPlanRepo.ListByGoalID(ctx, tx, goalID)
		if err != nil {
			return fmt.Errorf("Failed to list day plans for goal: %w", err)
		}
		planIDs := make([]uuid.UUID, 0, len(plans))
		for _, plan := range plans {
			planIDs = append(planIDs, plan.ID)
		}
		if err := gs.noteRepo.DeleteByDayPlanIDs(ctx, tx, planIDs); err != nil {
			return fmt.Errorf("Failed to delete notes for goal: %w", err)
		}
		if err := gs.dayPlanRepo.DeleteByGoalID(ctx, tx, goalID); err != nil {
			return fmt.Errorf("Failed to delete day plans for goal: %w", err)
		}
		if err := gs.goalRepo.DeleteByIDForUser(ctx, tx, goalID, userID); err != nil {
			return fmt.Errorf("Failed to delete goal: %w", err)
		}
		return nil
	})
}
