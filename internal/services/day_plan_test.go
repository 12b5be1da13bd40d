package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/repos"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

func newDayPlanService(t *testing.T, db *gorm.DB) DayPlanService {
	t.Helper()
	log := newTestLogger(t)
	return NewDayPlanService(db, log, repos.NewDayPlanRepo(db, log), repos.NewNoteRepo(db, log))
}

func seedGoalWithPlans(t *testing.T, db *gorm.DB, userID uuid.UUID, days int, start time.Time) (*types.Goal, []*types.DayPlan) {
	t.Helper()
	goal := &types.Goal{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "seeded goal",
		TotalDays: days,
		StartDate: start,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	plans := make([]*types.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		plan := &types.DayPlan{
			ID:        uuid.New(),
			GoalID:    goal.ID,
			DayNumber: i + 1,
			Date:      start.AddDate(0, 0, i),
			Topic:     "topic",
		}
		if err := db.Create(plan).Error; err != nil {
			t.Fatalf("seed plan %d: %v", i+1, err)
		}
		plans = append(plans, plan)
	}
	return goal, plans
}

func TestGetPlanByDate(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, plans := seedGoalWithPlans(t, db, user.ID, 3, start)
	ds := newDayPlanService(t, db)

	plan, err := ds.GetPlanByDate(context.Background(), user.ID, "2026-09-02")
	if err != nil {
		t.Fatalf("GetPlanByDate: %v", err)
	}
	if plan.ID != plans[1].ID || plan.DayNumber != 2 {
		t.Fatalf("resolved wrong plan: %+v", plan)
	}
}

func TestGetPlanByDateInvalidDate(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	ds := newDayPlanService(t, db)

	for _, raw := range []string{"02-09-2026", "2026/09/02", "yesterday", ""} {
		if _, err := ds.GetPlanByDate(context.Background(), user.ID, raw); err != ErrInvalidDate {
			t.Fatalf("%q: expected ErrInvalidDate, got %v", raw, err)
		}
	}
}

func TestGetPlanByDateNoPlan(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	seedGoalWithPlans(t, db, user.ID, 2, start)
	ds := newDayPlanService(t, db)

	if _, err := ds.GetPlanByDate(context.Background(), user.ID, "2026-10-15"); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestGetPlanByDateScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedTestUser(t, db)
	intruder := seedTestUser(t, db)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	seedGoalWithPlans(t, db, owner.ID, 1, start)
	ds := newDayPlanService(t, db)

	if _, err := ds.GetPlanByDate(context.Background(), intruder.ID, "2026-09-01"); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found for foreign user, got %v", err)
	}
}

func TestCompletePlan(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, plans := seedGoalWithPlans(t, db, user.ID, 1, start)
	ds := newDayPlanService(t, db)

	plan, err := ds.CompletePlan(context.Background(), user.ID, plans[0].ID)
	if err != nil {
		t.Fatalf("CompletePlan: %v", err)
	}
	if !plan.Completed || plan.CompletedAt == nil {
		t.Fatalf("returned plan not marked complete: %+v", plan)
	}

	var stored types.DayPlan
	if err := db.First(&stored, "id = ?", plans[0].ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !stored.Completed || stored.CompletedAt == nil {
		t.Fatalf("completion not persisted: %+v", stored)
	}
}

func TestAddNoteAndList(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, plans := seedGoalWithPlans(t, db, user.ID, 1, start)
	ds := newDayPlanService(t, db)

	note, err := ds.AddNote(context.Background(), user.ID, plans[0].ID, "  felt strong today  ")
	if err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if note.Content != "felt strong today" {
		t.Fatalf("content not trimmed: %q", note.Content)
	}

	notes, err := ds.ListNotes(context.Background(), user.ID, plans[0].ID)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != note.ID {
		t.Fatalf("unexpected notes: %+v", notes)
	}
}

func TestAddNoteEmptyRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedTestUser(t, db)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, plans := seedGoalWithPlans(t, db, user.ID, 1, start)
	ds := newDayPlanService(t, db)

	if _, err := ds.AddNote(context.Background(), user.ID, plans[0].ID, "   "); err == nil {
		t.Fatalf("empty note accepted")
	}
}

func TestAddNoteForeignPlanRejected(t *testing.T) {
	db := newTestDB(t)
	owner := seedTestUser(t, db)
	intruder := seedTestUser(t, db)
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, plans := seedGoalWithPlans(t, db, owner.ID, 1, start)
	ds := newDayPlanService(t, db)

	if _, err := ds.AddNote(context.Background(), intruder.ID, plans[0].ID, "sneaky"); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}
