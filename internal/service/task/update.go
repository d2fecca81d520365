package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Update edits a task's title, description and priority. The status and
// lifecycle timestamps are untouched; use ChangeStatus for transitions.
func (s *Service) Update(ctx context.Context, identity domain.Identity, input UpdateInput) (*domain.Task, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load the task and check ownership
	current, err := s.loadForMutation(ctx, identity, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("task.Update: %w", err)
	}

	// Step 3: Apply the edit + history entry in one transaction
	var updated *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		task, err := s.tasks.UpdateDetails(txCtx, current.ID, input.Title, input.Description, input.Priority)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}

		if _, err := s.history.Create(txCtx, &domain.HistoryEntry{
			TaskID:      task.ID,
			ActorID:     identity.UserID,
			OldStatus:   task.Status,
			NewStatus:   task.Status,
			Action:      domain.HistoryActionEdited,
			Description: editDescription(task),
		}); err != nil {
			return fmt.Errorf("record history: %w", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("task.Update: %w", err)
	}

	s.log.InfoContext(ctx, "task updated",
		slog.Int64("task_id", updated.ID),
		slog.Int64("actor_id", identity.UserID))

	return updated, nil
}
