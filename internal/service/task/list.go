package task

import (
	"context"
	"fmt"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// List returns the tasks visible to the identity, newest first.
// Admins see the whole board, regular users only their own tasks.
func (s *Service) List(ctx context.Context, identity domain.Identity) ([]domain.Task, error) {
	if identity.IsAdmin() {
		tasks, err := s.tasks.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("task.List all: %w", err)
		}
		return tasks, nil
	}

	tasks, err := s.tasks.ListByOwner(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("task.List by owner: %w", err)
	}
	return tasks, nil
}

// Get returns a single task. The ownership rule applies to reads too.
func (s *Service) Get(ctx context.Context, identity domain.Identity, taskID int64) (*domain.Task, error) {
	task, err := s.loadForMutation(ctx, identity, taskID)
	if err != nil {
		return nil, fmt.Errorf("task.Get: %w", err)
	}
	return task, nil
}
