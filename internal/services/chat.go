package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/normalization"
	"github.com/yungbote/goal-achiever-backend/internal/repos"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

// ChatHistoryLimit bounds how many prior messages are replayed into the
// prompt for one turn.
const ChatHistoryLimit = 10

// ApologyReply replaces the assistant turn when the generation call fails.
// The turn is still persisted so the conversation log stays coherent.
const ApologyReply = "I'm having trouble connecting to the AI service right now. Please try again in a moment."

type ChatReply struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

type ChatService interface {
	SendMessage(ctx context.Context, userID uuid.UUID, sessionID, message, contextTopic string) (*ChatReply, error)
	SendTopicMessage(ctx context.Context, userID, planID uuid.UUID, sessionID, message string) (*ChatReply, error)
	GetHistory(ctx context.Context, userID uuid.UUID, sessionID string) ([]*types.ChatMessage, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*repos.ChatSessionSummary, error)
}

type chatService struct {
	db          *gorm.DB
	log         *logger.Logger
	messageRepo repos.ChatMessageRepo
	dayPlanRepo repos.DayPlanRepo
	goalRepo    repos.GoalRepo
	aiClient    AIClient
}

func NewChatService(
	db *gorm.DB,
	log *logger.Logger,
	messageRepo repos.ChatMessageRepo,
	dayPlanRepo repos.DayPlanRepo,
	goalRepo repos.GoalRepo,
	aiClient AIClient,
) ChatService {
	return &chatService{
		db:          db,
		log:         log.With("service", "ChatService"),
		messageRepo: messageRepo,
		dayPlanRepo: dayPlanRepo,
		goalRepo:    goalRepo,
		aiClient:    aiClient,
	}
}

// SendMessage is one tutor turn: load bounded history, assemble the
// transcript, call the model, and persist both the user turn and the
// assistant reply together. Past validation it never fails; a generation
// error becomes the fixed apology reply.
func (cs *chatService) SendMessage(ctx context.Context, userID uuid.UUID, sessionID, message, contextTopic string) (*ChatReply, error) {
	message = normalization.TrimInputString(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	conversationText, err := cs.assembleTranscript(ctx, userID, sessionID, message)
	if err != nil {
		return nil, err
	}
	prompt := BuildChatPrompt(contextTopic, conversationText)
	reply := cs.generateReply(ctx, prompt)

	if err := cs.persistTurn(ctx, userID, sessionID, message, reply, contextTopic); err != nil {
		return nil, err
	}
	return &ChatReply{Reply: reply, SessionID: sessionID}, nil
}

// SendTopicMessage is the day-plan scoped variant: same turn mechanics, but
// the prompt carries the goal/day/topic context and the persisted turns are
// tagged with the plan's topic.
func (cs *chatService) SendTopicMessage(ctx context.Context, userID, planID uuid.UUID, sessionID, message string) (*ChatReply, error) {
	message = normalization.TrimInputString(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	plan, err := cs.dayPlanRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, err
	}
	goal, err := cs.goalRepo.GetByIDForUser(ctx, nil, plan.GoalID, userID)
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	conversationText, err := cs.assembleTranscript(ctx, userID, sessionID, message)
	if err != nil {
		return nil, err
	}
	contentJSON := ""
	if plan.Content != nil {
		contentJSON = string(plan.Content)
	}
	prompt := BuildTopicChatPrompt(goal.Title, plan.DayNumber, plan.Topic, contentJSON, conversationText)
	reply := cs.generateReply(ctx, prompt)

	if err := cs.persistTurn(ctx, userID, sessionID, message, reply, plan.Topic); err != nil {
		return nil, err
	}
	return &ChatReply{Reply: reply, SessionID: sessionID}, nil
}

func (cs *chatService) GetHistory(ctx context.Context, userID uuid.UUID, sessionID string) ([]*types.ChatMessage, error) {
	return cs.messageRepo.ListBySession(ctx, nil, userID, sessionID)
}

func (cs *chatService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*repos.ChatSessionSummary, error) {
	return cs.messageRepo.ListSessions(ctx, nil, userID, 20)
}

func (cs *chatService) assembleTranscript(ctx context.Context, userID uuid.UUID, sessionID, newMessage string) (string, error) {
	history, err := cs.messageRepo.GetRecentBySession(ctx, nil, userID, sessionID, ChatHistoryLimit)
	if err != nil {
		return "", fmt.Errorf("Failed to load chat history: %w", err)
	}
	lines := make([]string, 0, len(history)+1)
	for _, msg := range history {
		roleLabel := "Assistant"
		if msg.Role == types.ChatRoleUser {
			roleLabel = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", roleLabel, msg.Content))
	}
	lines = append(lines, fmt.Sprintf("User: %s", newMessage))
	return strings.Join(lines, "\n"), nil
}

func (cs *chatService) generateReply(ctx context.Context, prompt string) string {
	reply, err := cs.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		cs.log.Warn("Chat generation failed, substituting apology reply", "error", err)
		return ApologyReply
	}
	return reply
}

// persistTurn writes the user turn and the assistant reply as one unit.
// Partial persistence of only one side must not occur.
func (cs *chatService) persistTurn(ctx context.Context, userID uuid.UUID, sessionID, message, reply, contextTopic string) error {
	now := time.Now().UTC()
	userMsg := &types.ChatMessage{
		ID:           uuid.New(),
		UserID:       userID,
		SessionID:    sessionID,
		Role:         types.ChatRoleUser,
		Content:      message,
		ContextTopic: contextTopic,
		CreatedAt:    now,
	}
	assistantMsg := &types.ChatMessage{
		ID:           uuid.New(),
		UserID:       userID,
		SessionID:    sessionID,
		Role:         types.ChatRoleAssistant,
		Content:      reply,
		ContextTopic: contextTopic,
		CreatedAt:    now.Add(time.Millisecond),
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cs.messageRepo.Create(ctx, tx, []*types.ChatMessage{userMsg, assistantMsg}); err != nil {
			return fmt.Errorf("Failed to persist chat turn: %w", err)
		}
		return nil
	})
}
