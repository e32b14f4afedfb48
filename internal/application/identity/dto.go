package identity

import (
	"github.com/pedidos/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// ToLoginResponse converts a domain User to a login response DTO
func ToLoginResponse(user *identity.User) LoginResponse {
	return LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	}
}
