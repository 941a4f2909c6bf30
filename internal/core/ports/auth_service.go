package ports

import (
	"context"

	"github.com/studytrack/task-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	// Role is optional; empty means domain.RoleStudent.
	Role string
}

// AuthService defines account registration, credential verification and
// session-token issuance. Register and Login return the signed session
// token alongside the user; the transport layer decides how to deliver it.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
