package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Create adds a new task owned by the identity and records its creation
// in the history, both within one transaction.
func (s *Service) Create(ctx context.Context, identity domain.Identity, input CreateInput) (*domain.Task, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}

	// Step 2: Stamp lifecycle timestamps for the initial status
	now := s.clock.Now()
	startedAt, completedAt := lifecycleStamps(&domain.Task{}, status, now)

	// Step 3: Insert task + history entry in one transaction
	var created *domain.Task
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		task, err := s.tasks.Create(txCtx, &domain.Task{
			OwnerID:     identity.UserID,
			Title:       input.Title,
			Description: input.Description,
			Priority:    input.Priority,
			Status:      status,
			StartedAt:   startedAt,
			CompletedAt: completedAt,
		})
		if err != nil {
			return fmt.Errorf("create task: %w", err)
		}

		if _, err := s.history.Create(txCtx, &domain.HistoryEntry{
			TaskID:      task.ID,
			ActorID:     identity.UserID,
			NewStatus:   task.Status,
			Action:      domain.HistoryActionCreated,
			Description: createDescription(task),
		}); err != nil {
			return fmt.Errorf("record history: %w", err)
		}

		created = task
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("task.Create: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.Int64("task_id", created.ID),
		slog.Int64("owner_id", created.OwnerID))

	return created, nil
}
