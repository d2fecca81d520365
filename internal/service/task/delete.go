package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Delete removes a task. The final history entry survives the task row.
func (s *Service) Delete(ctx context.Context, identity domain.Identity, taskID int64) error {
	// Step 1: Load the task and check ownership
	current, err := s.loadForMutation(ctx, identity, taskID)
	if err != nil {
		return fmt.Errorf("task.Delete: %w", err)
	}

	// Step 2: Delete the task + final history entry in one transaction
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tasks.Delete(txCtx, current.ID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}

		if _, err := s.history.Create(txCtx, &domain.HistoryEntry{
			TaskID:      current.ID,
			ActorID:     identity.UserID,
			OldStatus:   current.Status,
			Action:      domain.HistoryActionDeleted,
			Description: deleteDescription(current),
		}); err != nil {
			return fmt.Errorf("record history: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("task.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.Int64("task_id", current.ID),
		slog.Int64("actor_id", identity.UserID))

	return nil
}
