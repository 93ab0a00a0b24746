package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/blubridge/hrms-backend-go/internal/domain/audit"
	"github.com/blubridge/hrms-backend-go/internal/domain/auth"
	"github.com/blubridge/hrms-backend-go/internal/domain/user"
	"github.com/blubridge/hrms-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService   jwt.Service
	auditService audit.AuditService
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	auditService audit.AuditService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		auditService:   auditService,
	}
}

// Login implements auth.AuthService. Unknown usernames and wrong passwords
// produce the same error so the response does not leak which usernames exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, user.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, user.ErrInvalidCredentials
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.auditService.Record(ctx, audit.ActionLogin, "user", &u.ID, nil)

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        u.ToResponse(),
	}, nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, auth.ErrUnauthorized
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.UserResponse{}, auth.ErrUnauthorized
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return u.ToResponse(), nil
}
