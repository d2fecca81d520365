// Package user implements administrative account management.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	UpdateData(ctx context.Context, id int64, name, email string, role domain.UserRole) (*domain.User, error)
	UpdateStatus(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// Service implements admin account operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

// List returns every account, newest first. Admin only.
func (s *Service) List(ctx context.Context, identity domain.Identity) ([]domain.User, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// UpdateDataInput holds parameters for an admin account edit.
type UpdateDataInput struct {
	UserID int64
	Name   string
	Email  string
	Role   domain.UserRole
}

// Validate validates the update input.
func (i UpdateDataInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be user or admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateData edits an account's name, email and role. Admin only.
func (s *Service) UpdateData(ctx context.Context, identity domain.Identity, input UpdateDataInput) (*domain.User, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.UpdateData(ctx, input.UserID, input.Name, input.Email, input.Role)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateData: %w", err)
	}

	s.log.InfoContext(ctx, "user data updated",
		slog.Int64("user_id", user.ID),
		slog.Int64("admin_id", identity.UserID))

	return user, nil
}

// UpdateStatus flips an account's active flag. Admin only.
// Admins cannot deactivate their own account.
func (s *Service) UpdateStatus(ctx context.Context, identity domain.Identity, userID int64, active bool) error {
	if !identity.IsAdmin() {
		return domain.ErrForbidden
	}
	if userID == identity.UserID && !active {
		return domain.NewValidationError("user_id", "cannot deactivate your own account")
	}

	if err := s.users.UpdateStatus(ctx, userID, active); err != nil {
		return fmt.Errorf("user.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "user status updated",
		slog.Int64("user_id", userID),
		slog.Bool("active", active))

	return nil
}

// Delete removes an account and everything it owns. Admin only.
// Admins cannot delete their own account.
func (s *Service) Delete(ctx context.Context, identity domain.Identity, userID int64) error {
	if !identity.IsAdmin() {
		return domain.ErrForbidden
	}
	if userID == identity.UserID {
		return domain.NewValidationError("user_id", "cannot delete your own account")
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.Int64("user_id", userID),
		slog.Int64("admin_id", identity.UserID))

	return nil
}
