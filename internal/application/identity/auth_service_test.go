package identity

import (
	"context"
	"testing"

	"github.com/pedidos/backend/internal/domain/identity"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func newTestAuthService(repo *MockUserRepository) *AuthService {
	return NewAuthService(repo, zap.NewNop())
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns user summary on valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		user, err := identity.NewUser("coordenacao", "secret123", identity.RoleCoordination)
		require.NoError(t, err)

		repo.On("FindByUsername", ctx, "coordenacao").Return(user, nil)

		service := newTestAuthService(repo)
		result, err := service.Login(ctx, LoginRequest{Username: "coordenacao", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.ID)
		assert.Equal(t, "coordenacao", result.Username)
		assert.Equal(t, "COORDENACAO_ADMIN", result.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", ctx, "nobody").Return(nil, shared.ErrNotFound)

		service := newTestAuthService(repo)
		_, err := service.Login(ctx, LoginRequest{Username: "nobody", Password: "secret123"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		user, err := identity.NewUser("estoque", "secret123", identity.RoleStock)
		require.NoError(t, err)

		repo.On("FindByUsername", ctx, "estoque").Return(user, nil)

		service := newTestAuthService(repo)
		_, err = service.Login(ctx, LoginRequest{Username: "estoque", Password: "wrong"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("unknown user and wrong password look the same", func(t *testing.T) {
		repo := new(MockUserRepository)
		user, err := identity.NewUser("estoque", "secret123", identity.RoleStock)
		require.NoError(t, err)

		repo.On("FindByUsername", ctx, "nobody").Return(nil, shared.ErrNotFound)
		repo.On("FindByUsername", ctx, "estoque").Return(user, nil)

		service := newTestAuthService(repo)
		_, errUnknown := service.Login(ctx, LoginRequest{Username: "nobody", Password: "x"})
		_, errWrong := service.Login(ctx, LoginRequest{Username: "estoque", Password: "x"})

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}
