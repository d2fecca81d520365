package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// ChangeStatus transitions a task through the board columns.
// A task cannot jump straight from todo to done; it has to pass through
// in_progress. Reopening a finished task is allowed.
func (s *Service) ChangeStatus(ctx context.Context, identity domain.Identity, input ChangeStatusInput) (*domain.Task, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load the task and check ownership
	current, err := s.loadForMutation(ctx, identity, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("task.ChangeStatus: %w", err)
	}

	// Step 3: Check the transition
	if !domain.ValidTransition(current.Status, input.Status) {
		return nil, domain.NewValidationError("status",
			fmt.Sprintf("cannot move from %s to %s directly", current.Status, input.Status))
	}

	// Step 4: Stamp lifecycle timestamps
	now := s.clock.Now()
	startedAt, completedAt := lifecycleStamps(current, input.Status, now)

	// Step 5: Apply the transition + history entry in one transaction
	oldStatus := current.Status
	var updated *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		task, err := s.tasks.UpdateStatus(txCtx, current.ID, input.Status, startedAt, completedAt)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		if _, err := s.history.Create(txCtx, &domain.HistoryEntry{
			TaskID:      task.ID,
			ActorID:     identity.UserID,
			OldStatus:   oldStatus,
			NewStatus:   task.Status,
			Action:      domain.HistoryActionStatusChanged,
			Description: statusDescription(task),
		}); err != nil {
			return fmt.Errorf("record history: %w", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("task.ChangeStatus: %w", err)
	}

	s.log.InfoContext(ctx, "task status changed",
		slog.Int64("task_id", updated.ID),
		slog.String("from", oldStatus.String()),
		slog.String("to", updated.Status.String()))

	return updated, nil
}
