package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/validation"
	"agrilink/marketplace-backend/pkg/query"
)

// TaskService adds farm-task query helpers over the generic envelope. The
// priority bucket is computed from due-date windows at query time, never read
// from storage.
type TaskService struct {
	*Service[models.FarmTask]
}

func NewTaskService(repo *repository.Repository[models.FarmTask], validator validation.Validator, logger *zap.Logger) *TaskService {
	return &TaskService{Service: New(validation.EntityTask, repo, validator, logger)}
}

// ListByFarmer lists a farmer's tasks, newest due first.
func (s *TaskService) ListByFarmer(ctx context.Context, farmerID uuid.UUID) ListResponse[models.FarmTask] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{query.Eq("farmer_id", farmerID)},
		Sorts:   []query.Sort{{Column: "due_date", Ascending: true}},
	})
}

// ListOverdue lists unfinished tasks whose due date has passed.
func (s *TaskService) ListOverdue(ctx context.Context, farmerID uuid.UUID) ListResponse[models.FarmTask] {
	return s.List(ctx, query.Options{
		Filters: []query.Filter{
			query.Eq("farmer_id", farmerID),
			{Column: "due_date", Operator: query.OpLt, Value: time.Now()},
			{Column: "status", Operator: query.OpNeq, Value: string(models.TaskStatusCompleted)},
		},
		Sorts: []query.Sort{{Column: "due_date", Ascending: true}},
	})
}

// ListByPriority lists a farmer's unfinished tasks in one derived priority
// bucket: due within one day is high, within seven is medium, later is low.
func (s *TaskService) ListByPriority(ctx context.Context, farmerID uuid.UUID, priority models.TaskPriority) ListResponse[models.FarmTask] {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	highEnd := today.AddDate(0, 0, 2)   // due before this is high
	mediumEnd := today.AddDate(0, 0, 8) // due before this (and past highEnd) is medium

	filters := []query.Filter{
		query.Eq("farmer_id", farmerID),
		{Column: "status", Operator: query.OpNeq, Value: string(models.TaskStatusCompleted)},
	}
	switch priority {
	case models.TaskPriorityHigh:
		filters = append(filters, query.Filter{Column: "due_date", Operator: query.OpLt, Value: highEnd})
	case models.TaskPriorityMedium:
		filters = append(filters,
			query.Filter{Column: "due_date", Operator: query.OpGte, Value: highEnd},
			query.Filter{Column: "due_date", Operator: query.OpLt, Value: mediumEnd})
	default:
		filters = append(filters, query.Filter{Column: "due_date", Operator: query.OpGte, Value: mediumEnd})
	}

	return s.List(ctx, query.Options{
		Filters: filters,
		Sorts:   []query.Sort{{Column: "due_date", Ascending: true}},
	})
}
