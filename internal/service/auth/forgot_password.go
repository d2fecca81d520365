package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ForgotPassword resets the account to a random temporary password and mails
// it to the user. Returns ErrNotFound if no account uses the given email.
func (s *Service) ForgotPassword(ctx context.Context, input ForgotPasswordInput) error {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return err
	}
	if s.mail == nil {
		return fmt.Errorf("auth.ForgotPassword: %w", errors.New("outbound mail is not configured"))
	}

	// Step 2: Find the account
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword get user: %w", err)
	}

	// Step 3: Generate and store a temporary password
	tempPassword, err := generateTempPassword()
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.ForgotPassword hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("auth.ForgotPassword store password: %w", err)
	}

	// Step 4: Mail the temporary password
	body := fmt.Sprintf("Hola %s,\n\nTu nueva contraseña temporal es: %s\n\nCámbiala después de iniciar sesión.", user.Name, tempPassword)
	if err := s.mail.Send(ctx, user.Email, "Recuperación de contraseña", body); err != nil {
		return fmt.Errorf("auth.ForgotPassword send mail: %w", err)
	}

	s.log.InfoContext(ctx, "temporary password issued",
		slog.Int64("user_id", user.ID))

	return nil
}
