// Package history implements querying and retention of the task audit trail.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// historyRepo defines the history repository interface needed by this service.
type historyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.HistoryEntry, error)
	ListByActor(ctx context.Context, actorID int64) ([]domain.HistoryEntry, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.HistoryEntry, error)
	DeleteOne(ctx context.Context, id int64) error
	DeleteAllByActor(ctx context.Context, actorID int64) (int64, error)
}

// Service implements history query and retention operations.
type Service struct {
	log     *slog.Logger
	entries historyRepo
}

// NewService creates a new history service instance.
func NewService(logger *slog.Logger, entries historyRepo) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		entries: entries,
	}
}

// ListOwn returns the caller's own trail, newest first.
func (s *Service) ListOwn(ctx context.Context, identity domain.Identity) ([]domain.HistoryEntry, error) {
	entries, err := s.entries.ListByActor(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("history.ListOwn: %w", err)
	}
	return entries, nil
}

// ListByUser returns the trail of the given user, newest first.
// Only admins may read someone else's trail.
func (s *Service) ListByUser(ctx context.Context, identity domain.Identity, userID int64) ([]domain.HistoryEntry, error) {
	if !identity.CanActOn(userID) {
		return nil, domain.ErrForbidden
	}
	entries, err := s.entries.ListByActor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history.ListByUser: %w", err)
	}
	return entries, nil
}

// ListByTask returns every entry describing the given task, newest first.
// The task itself may already be deleted.
func (s *Service) ListByTask(ctx context.Context, taskID int64) ([]domain.HistoryEntry, error) {
	entries, err := s.entries.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("history.ListByTask: %w", err)
	}
	return entries, nil
}

// DeleteEntry permanently removes a single entry. Only admins or the entry's
// own actor may remove it.
func (s *Service) DeleteEntry(ctx context.Context, identity domain.Identity, entryID int64) error {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("history.DeleteEntry get: %w", err)
	}
	if !identity.CanActOn(entry.ActorID) {
		return domain.ErrForbidden
	}

	if err := s.entries.DeleteOne(ctx, entryID); err != nil {
		return fmt.Errorf("history.DeleteEntry: %w", err)
	}

	s.log.InfoContext(ctx, "history entry deleted",
		slog.Int64("entry_id", entryID),
		slog.Int64("actor_id", identity.UserID))

	return nil
}

// DeleteAllForUser permanently removes a user's whole trail.
// Only admins or the user themselves may do this.
func (s *Service) DeleteAllForUser(ctx context.Context, identity domain.Identity, userID int64) (int64, error) {
	if !identity.CanActOn(userID) {
		return 0, domain.ErrForbidden
	}

	deleted, err := s.entries.DeleteAllByActor(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("history.DeleteAllForUser: %w", err)
	}

	s.log.InfoContext(ctx, "history trail purged",
		slog.Int64("user_id", userID),
		slog.Int64("deleted", deleted))

	return deleted, nil
}
