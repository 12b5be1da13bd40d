package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A second pooled connection would see a different empty :memory: db.
	sqlDB.SetMaxOpenConns(1)
	if err := gdb.AutoMigrate(
		&types.User{},
		&types.Goal{},
		&types.DayPlan{},
		&types.Note{},
		&types.ChatMessage{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

// fakeAIClient scripts the single generation capability the pipeline uses.
type fakeAIClient struct {
	fn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.fn(ctx, prompt)
}
