package identity

import (
	"strings"
	"time"

	"github.com/pedidos/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents the access profile of a user
type Role string

const (
	// RoleCoordination manages orders and their lifecycle
	RoleCoordination Role = "COORDENACAO_ADMIN"
	// RoleStock manages the catalog and stock levels
	RoleStock Role = "ESTOQUE_ADMIN"
)

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// IsValid returns true if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleCoordination, RoleStock:
		return true
	}
	return false
}

// Password cost for bcrypt
const bcryptCost = 10

// User represents an administrative account
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	Role         Role   `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(username, password string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role")
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("MISSING_FIELD", "Username cannot be empty")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_INPUT", "Username cannot exceed 100 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("MISSING_FIELD", "Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 6 characters")
	}
	return nil
}
