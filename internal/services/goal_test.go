package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/repos"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

func newGoalService(t *testing.T, db *gorm.DB, ai AIClient) GoalService {
	t.Helper()
	log := newTestLogger(t)
	dayPlanRepo := repos.NewDayPlanRepo(db, log)
	planGen := NewPlanGeneratorService(log, ai)
	return NewGoalService(
		db,
		log,
		repos.NewGoalRepo(db, log),
		dayPlanRepo,
		repos.NewNoteRepo(db, log),
		planGen,
		NewContentBatchFetcher(log, dayPlanRepo, planGen, DefaultContentBatchSize),
	)
}

func TestCreateGoalWithoutAI(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	gs := newGoalService(t, db, &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		t.Fatalf("AI must not be called when use_ai is false")
		return "", nil
	}})

	goal, err := gs.CreateGoal(context.Background(), user.ID, CreateGoalInput{
		Title:     "Read more books",
		TotalDays: 3,
		StartDate: "2026-09-01",
		UseAI:     false,
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if len(goal.DayPlans) != 3 {
		t.Fatalf("expected 3 day plans, got %d", len(goal.DayPlans))
	}

	var plans []*types.DayPlan
	if err := db.Where("goal_id = ?", goal.ID).Order("day_number ASC").Find(&plans).Error; err != nil {
		t.Fatalf("load plans: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("expected 3 persisted plans, got %d", len(plans))
	}
	for i, plan := range plans {
		if plan.DayNumber != i+1 {
			t.Fatalf("plan %d has day number %d", i, plan.DayNumber)
		}
		if plan.Topic != "Daily progress for Read more books" {
			t.Fatalf("unexpected topic: %q", plan.Topic)
		}
		if plan.Content != nil {
			t.Fatalf("content must stay null without AI")
		}
		wantDate := time.Date(2026, 9, 1+i, 0, 0, 0, 0, time.UTC)
		if !plan.Date.Equal(wantDate) {
			t.Fatalf("plan %d date %v, want %v", i, plan.Date, wantDate)
		}
	}
}

func TestCreateGoalWithAIFillsContent(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	ai := &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "HIGH-LEVEL daily progression") {
			return `["Warm up", "Push harder", "Recover"]`, nil
		}
		return `{"overview": "o", "tasks": ["t1"], "details": "d", "tips": "tip"}`, nil
	}}
	gs := newGoalService(t, db, ai)

	goal, err := gs.CreateGoal(context.Background(), user.ID, CreateGoalInput{
		Title:     "Get fit",
		TotalDays: 3,
		UseAI:     true,
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	var plans []*types.DayPlan
	if err := db.Where("goal_id = ?", goal.ID).Order("day_number ASC").Find(&plans).Error; err != nil {
		t.Fatalf("load plans: %v", err)
	}
	wantTopics := []string{"Warm up", "Push harder", "Recover"}
	for i, plan := range plans {
		if plan.Topic != wantTopics[i] {
			t.Fatalf("plan %d topic %q, want %q", i, plan.Topic, wantTopics[i])
		}
		if plan.Content == nil {
			t.Fatalf("plan %d content not persisted", i)
		}
	}
}

func TestCreateGoalValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	gs := newGoalService(t, db, &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}})

	cases := []CreateGoalInput{
		{Title: "", TotalDays: 5},
		{Title: "  ", TotalDays: 5},
		{Title: "ok", TotalDays: 0},
		{Title: "ok", TotalDays: 366},
		{Title: "ok", TotalDays: 5, StartDate: "01-09-2026"},
		{Title: "ok", TotalDays: 5, StartDate: "not a date"},
	}
	for i, input := range cases {
		if _, err := gs.CreateGoal(context.Background(), user.ID, input); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}

	var count int64
	if err := db.Model(&types.Goal{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected inputs must not create goals, found %d", count)
	}
}

func TestCreateGoalBoundaryDays(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	gs := newGoalService(t, db, &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}})

	for _, days := range []int{MinGoalDays, MaxGoalDays} {
		goal, err := gs.CreateGoal(context.Background(), user.ID, CreateGoalInput{
			Title:     fmt.Sprintf("goal %d", days),
			TotalDays: days,
		})
		if err != nil {
			t.Fatalf("total_days=%d: %v", days, err)
		}
		var count int64
		if err := db.Model(&types.DayPlan{}).Where("goal_id = ?", goal.ID).Count(&count).Error; err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != int64(days) {
			t.Fatalf("total_days=%d: got %d plans", days, count)
		}
	}
}

func TestDeleteGoalRemovesChildren(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	gs := newGoalService(t, db, &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}})

	goal, err := gs.CreateGoal(context.Background(), user.ID, CreateGoalInput{Title: "doomed", TotalDays: 2})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	note := &types.Note{ID: uuid.New(), DayPlanID: goal.DayPlans[0].ID, Content: "note"}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("seed note: %v", err)
	}

	if err := gs.DeleteGoal(context.Background(), user.ID, goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"goals", &types.Goal{}},
		{"day_plans", &types.DayPlan{}},
		{"notes", &types.Note{}},
	} {
		var count int64
		if err := db.Model(probe.model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", probe.name, err)
		}
		if count != 0 {
			t.Fatalf("%s not cleaned up, %d rows remain", probe.name, count)
		}
	}
}

func TestDeleteGoalForeignUserRejected(t *testing.T) {
	db := newTestDB(t)
	owner := seedTestUser(t, db)
	intruder := seedTestUser(t, db)
	gs := newGoalService(t, db, &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}})

	goal, err := gs.CreateGoal(context.Background(), owner.ID, CreateGoalInput{Title: "mine", TotalDays: 1})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if err := gs.DeleteGoal(context.Background(), intruder.ID, goal.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}

	var count int64
	if err := db.Model(&types.Goal{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("goal must survive a foreign delete attempt")
	}
}

func TestGetGoalPreloadsOrderedPlans(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	gs := newGoalService(t, db, &fakeAIClient{fn: func(ctx context.Context, prompt string) (string, error) {
		return "", nil
	}})

	created, err := gs.CreateGoal(context.Background(), user.ID, CreateGoalInput{Title: "ordered", TotalDays: 5})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	goal, err := gs.GetGoal(context.Background(), user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetGoal: %v", err)
	}
	if len(goal.DayPlans) != 5 {
		t.Fatalf("expected 5 preloaded plans, got %d", len(goal.DayPlans))
	}
	for i, plan := range goal.DayPlans {
		if plan.DayNumber != i+1 {
			t.Fatalf("plans not ordered by day number: index %d has day %d", i, plan.DayNumber)
		}
	}
}
