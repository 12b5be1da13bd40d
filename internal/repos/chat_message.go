package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

// ChatSessionSummary is the grouped view used by the sessions listing. A
// session has no row of its own, it only exists through its messages.
type ChatSessionSummary struct {
	SessionID    string    `json:"session_id"`
	ContextTopic string    `json:"context_topic"`
	StartedAt    time.Time `json:"started_at"`
	MessageCount int64     `json:"message_count"`
}

type ChatMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, messages []*types.ChatMessage) ([]*types.ChatMessage, error)
	GetRecentBySession(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sessionID string, limit int) ([]*types.ChatMessage, error)
	ListBySession(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sessionID string) ([]*types.ChatMessage, error)
	ListSessions(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*ChatSessionSummary, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, baseLog *logger.Logger) ChatMessageRepo {
	repoLog := baseLog.With("repo", "ChatMessageRepo")
	return &chatMessageRepo{db: db, log: repoLog}
}

func (cr *chatMessageRepo) Create(ctx context.Context, tx *gorm.DB, messages []*types.ChatMessage) ([]*types.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(messages) == 0 {
		return []*types.ChatMessage{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetRecentBySession returns the newest `limit` messages of the session in
// chronological (oldest first) order.
func (cr *chatMessageRepo) GetRecentBySession(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sessionID string, limit int) ([]*types.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ChatMessage
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

func (cr *chatMessageRepo) ListBySession(ctx context.Context, tx *gorm.DB, userID uuid.UUID, sessionID string) ([]*types.ChatMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ChatMessage
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *chatMessageRepo) ListSessions(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*ChatSessionSummary, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*ChatSessionSummary
	if err := transaction.WithContext(ctx).
		Model(&types.ChatMessage{}).
		Select("session_id, MAX(context_topic) AS context_topic, MIN(created_at) AS started_at, COUNT(id) AS message_count").
		Where("user_id = ?", userID).
		Group("session_id").
		Order("MAX(created_at) DESC").
		Limit(limit).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
