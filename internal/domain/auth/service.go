package auth

import (
	"context"

	"github.com/blubridge/hrms-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context) (user.UserResponse, error)
}
