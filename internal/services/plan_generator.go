package services

import (
	"context"
	"fmt"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

// PlanGeneratorService wraps the AI client with the prompt templates,
// response extraction and fallbacks. GenerateOutline and GenerateDailyContent
// never fail: any upstream or parse error degrades to a deterministic
// template so goal creation always completes structurally.
type PlanGeneratorService interface {
	GenerateOutline(ctx context.Context, title, description string, totalDays int) []string
	GenerateDailyContent(ctx context.Context, title, description string, dayNumber int, topic string) *types.DayContent
	TryGenerateDailyContent(ctx context.Context, title, description string, dayNumber int, topic string) (*types.DayContent, error)
}

type planGeneratorService struct {
	log      *logger.Logger
	aiClient AIClient
}

func NewPlanGeneratorService(log *logger.Logger, aiClient AIClient) PlanGeneratorService {
	return &planGeneratorService{
		log:      log.With("service", "PlanGeneratorService"),
		aiClient: aiClient,
	}
}

func (pg *planGeneratorService) GenerateOutline(ctx context.Context, title, description string, totalDays int) []string {
	prompt := BuildOutlinePrompt(title, description, totalDays)
	raw, err := pg.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		pg.log.Warn("Outline generation call failed, falling back to default topics", "error", err)
		return reconcileOutline(title, totalDays, nil)
	}
	topics, ok := ParseTopicList(raw)
	if !ok {
		pg.log.Warn("Outline generation returned unparseable content, falling back to default topics", "raw_content", raw)
		return reconcileOutline(title, totalDays, nil)
	}
	return reconcileOutline(title, totalDays, topics)
}

// reconcileOutline forces a candidate topic list to exactly totalDays
// entries. Extra entries are discarded, short lists are padded, and an empty
// candidate is replaced wholesale with deterministic placeholders. Never
// returns a slice whose length differs from totalDays.
func reconcileOutline(title string, totalDays int, topics []string) []string {
	if totalDays < 1 {
		totalDays = 1
	}
	if len(topics) == 0 {
		out := make([]string, totalDays)
		for i := range out {
			out[i] = fmt.Sprintf("Day %d: Work on %s", i+1, title)
		}
		return out
	}
	if len(topics) > totalDays {
		return topics[:totalDays]
	}
	out := make([]string, 0, totalDays)
	out = append(out, topics...)
	for len(out) < totalDays {
		out = append(out, fmt.Sprintf("Continued progress for %s", title))
	}
	return out
}

func (pg *planGeneratorService) GenerateDailyContent(ctx context.Context, title, description string, dayNumber int, topic string) *types.DayContent {
	content, err := pg.TryGenerateDailyContent(ctx, title, description, dayNumber, topic)
	if err != nil {
		pg.log.Warn("Daily content generation failed, using fallback template", "day_number", dayNumber, "error", err)
		return FallbackDayContent(topic)
	}
	return content
}

// TryGenerateDailyContent surfaces the upstream error so the batch fetcher
// can leave a failed day's content null instead of writing the template.
// Parse failures still fall back here: the call itself succeeded.
func (pg *planGeneratorService) TryGenerateDailyContent(ctx context.Context, title, description string, dayNumber int, topic string) (*types.DayContent, error) {
	prompt := BuildDailyContentPrompt(title, description, dayNumber, topic)
	raw, err := pg.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	content, ok := ParseDayContent(raw, topic)
	if !ok {
		pg.log.Warn("Daily content JSON parsing failed, using fallback template", "day_number", dayNumber, "raw_content", raw)
	}
	return content, nil
}
