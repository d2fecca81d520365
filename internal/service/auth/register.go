package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// Register creates a new account. The very first account in the system
// gets the admin role; everyone after that is a regular user.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Decide role. The bootstrap account becomes admin.
	role := domain.UserRoleUser
	admins, err := s.users.CountByRole(ctx, domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.Register count admins: %w", err)
	}
	if admins == 0 {
		role = domain.UserRoleAdmin
	}

	// Step 4: Create user. Email uniqueness is enforced by a DB constraint.
	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	// Step 5: Issue token
	token, err := s.jwt.Generate(domain.Identity{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.Int64("user_id", user.ID),
		slog.String("role", user.Role.String()))

	return &AuthResult{AccessToken: token, User: user}, nil
}
