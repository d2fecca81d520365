// Package task implements the task board operations: creating, editing,
// transitioning, and deleting tasks. Every successful mutation appends
// exactly one history entry in the same transaction.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// taskRepo defines the task repository interface needed by task service.
type taskRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	ListAll(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	UpdateDetails(ctx context.Context, id int64, title, description string, priority domain.TaskPriority) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus, startedAt, completedAt *time.Time) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

// historyRepo defines the append-only history interface needed by task service.
type historyRepo interface {
	Create(ctx context.Context, e *domain.HistoryEntry) (*domain.HistoryEntry, error)
}

// txManager defines the transaction manager interface needed by task service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// clock defines the time source. All lifecycle stamps come from here.
type clock interface {
	Now() time.Time
}

// Service implements task operations.
type Service struct {
	log     *slog.Logger
	tasks   taskRepo
	history historyRepo
	tx      txManager
	clock   clock
}

// NewService creates a new task service instance.
func NewService(logger *slog.Logger, tasks taskRepo, history historyRepo, tx txManager, clock clock) *Service {
	return &Service{
		log:     logger.With("service", "task"),
		tasks:   tasks,
		history: history,
		tx:      tx,
		clock:   clock,
	}
}

// loadForMutation fetches a task and checks that the identity may act on it.
// Admins may act on any task, regular users only on their own.
func (s *Service) loadForMutation(ctx context.Context, identity domain.Identity, taskID int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if !identity.CanActOn(task.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

// History descriptions, verbatim wording of the board UI.

func createDescription(t *domain.Task) string {
	return fmt.Sprintf("%s con prioridad: %s y estado: %s",
		t.Title, t.Priority.DisplayLabel(), t.Status.DisplayLabel())
}

func editDescription(t *domain.Task) string {
	return fmt.Sprintf("%s con prioridad: %s", t.Title, t.Priority.DisplayLabel())
}

func statusDescription(t *domain.Task) string {
	return fmt.Sprintf("Tarea: %s con prioridad: %s", t.Title, t.Priority.DisplayLabel())
}

func deleteDescription(t *domain.Task) string {
	return fmt.Sprintf("%s con ID: %d", t.Title, t.ID)
}

// lifecycleStamps decides started_at/completed_at for a task entering the
// given status. Entering in_progress stamps started_at. Entering done stamps
// completed_at and backfills started_at. Returning to todo clears both.
func lifecycleStamps(current *domain.Task, status domain.TaskStatus, now time.Time) (startedAt, completedAt *time.Time) {
	switch status {
	case domain.TaskStatusInProgress:
		return &now, nil
	case domain.TaskStatusDone:
		startedAt = current.StartedAt
		if startedAt == nil {
			startedAt = &now
		}
		return startedAt, &now
	default: // todo
		return nil, nil
	}
}
