package identity

import (
	"context"

	"github.com/pedidos/backend/internal/domain/identity"
	"github.com/pedidos/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login authenticates a user by username and password.
// Unknown usernames and wrong passwords produce the same error so the
// response does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	s.logger.Info("Login attempt", zap.String("username", req.Username))

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Warn("User not found during login", zap.String("username", req.Username))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}

	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", req.Username))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}

	s.logger.Info("Login succeeded",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	response := ToLoginResponse(user)
	return &response, nil
}
