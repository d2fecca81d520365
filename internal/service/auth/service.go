// Package auth implements account and session operations: registration,
// password login, password changes, and password recovery.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/heartmarshall/taskboard-backend/internal/config"
	"github.com/heartmarshall/taskboard-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// jwtManager defines the credential signing interface needed by auth service.
type jwtManager interface {
	Generate(identity domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}

// mailer defines the outbound mail interface needed by password recovery.
type mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	mail  mailer
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
// mail may be nil when outbound mail is not configured.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, mail mailer, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		mail:  mail,
		cfg:   cfg,
	}
}

// Verify validates a signed token and returns the identity it carries.
func (s *Service) Verify(token string) (domain.Identity, error) {
	return s.jwt.Verify(token)
}

const tempPasswordLength = 12

const tempPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateTempPassword returns a random password for account recovery.
func generateTempPassword() (string, error) {
	buf := make([]byte, tempPasswordLength)
	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate temp password: %w", err)
		}
		buf[i] = tempPasswordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
