package auth

import "github.com/heartmarshall/taskboard-backend/internal/domain"

// AuthResult is returned by Register and LoginWithPassword.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
