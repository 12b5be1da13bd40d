package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/goal-achiever-backend/internal/logger"
	"github.com/yungbote/goal-achiever-backend/internal/repos"
	"github.com/yungbote/goal-achiever-backend/internal/types"
)

// DefaultContentBatchSize caps concurrent generation calls per batch to stay
// under the free-tier rate limits of the upstream API.
const DefaultContentBatchSize = 10

// ContentBatchFetcher fans daily-content generation out over all day plans of
// a goal in fixed-size batches. Batch K+1 does not start until every call in
// batch K has settled and its results are persisted, so partial progress
// survives a crash mid-run. A failed call leaves that day's content null and
// never aborts its siblings.
type ContentBatchFetcher interface {
	FetchAll(ctx context.Context, goal *types.Goal, plans []*types.DayPlan)
}

type contentBatchFetcher struct {
	log         *logger.Logger
	dayPlanRepo repos.DayPlanRepo
	planGen     PlanGeneratorService
	batchSize   int
}

func NewContentBatchFetcher(log *logger.Logger, dayPlanRepo repos.DayPlanRepo, planGen PlanGeneratorService, batchSize int) ContentBatchFetcher {
	if batchSize < 1 {
		batchSize = DefaultContentBatchSize
	}
	return &contentBatchFetcher{
		log:         log.With("service", "ContentBatchFetcher"),
		dayPlanRepo: dayPlanRepo,
		planGen:     planGen,
		batchSize:   batchSize,
	}
}

func (cf *contentBatchFetcher) FetchAll(ctx context.Context, goal *types.Goal, plans []*types.DayPlan) {
	for start := 0; start < len(plans); start += cf.batchSize {
		end := start + cf.batchSize
		if end > len(plans) {
			end = len(plans)
		}
		batch := plans[start:end]

		var group errgroup.Group
		for _, plan := range batch {
			plan := plan
			group.Go(func() error {
				content, err := cf.planGen.TryGenerateDailyContent(ctx, goal.Title, goal.Description, plan.DayNumber, plan.Topic)
				if err != nil {
					// Content stays null for this day, to be regenerated
					// by mechanisms outside this service.
					cf.log.Warn("Failed to generate content for day", "day_number", plan.DayNumber, "error", err)
					return nil
				}
				raw, err := content.Marshal()
				if err != nil {
					cf.log.Warn("Failed to encode content for day", "day_number", plan.DayNumber, "error", err)
					return nil
				}
				plan.Content = raw
				return nil
			})
		}
		_ = group.Wait()

		// Checkpoint: whatever this batch obtained is durable before the
		// next batch begins.
		if err := cf.dayPlanRepo.UpdateContents(ctx, nil, batch); err != nil {
			cf.log.Error("Failed to persist batch content", "goal_id", goal.ID, "error", err)
		}
	}
}
