package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// UpdatePassword changes the caller's password after verifying the old one.
// Returns ErrUnauthorized if the old password does not match.
func (s *Service) UpdatePassword(ctx context.Context, input UpdatePasswordInput) error {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}

	// Step 2: Load the account
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("auth.UpdatePassword get user: %w", err)
	}

	// Step 3: Verify the current password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}

	// Step 4: Hash and store the new one
	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.UpdatePassword hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("auth.UpdatePassword store password: %w", err)
	}

	s.log.InfoContext(ctx, "password updated",
		slog.Int64("user_id", user.ID))

	return nil
}
