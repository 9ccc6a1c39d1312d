package roles

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

type MockPlatform struct {
	mock.Mock
}

func (m *MockPlatform) GuildRoles(ctx context.Context, guild string) ([]domain.Role, error) {
	args := m.Called(ctx, guild)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockPlatform) Member(ctx context.Context, guild, user string) (domain.Member, error) {
	args := m.Called(ctx, guild, user)
	return args.Get(0).(domain.Member), args.Error(1)
}

func (m *MockPlatform) AddRole(ctx context.Context, guild, user, role, reason string) error {
	args := m.Called(ctx, guild, user, role, reason)
	return args.Error(0)
}

func (m *MockPlatform) RemoveRole(ctx context.Context, guild, user, role, reason string) error {
	args := m.Called(ctx, guild, user, role, reason)
	return args.Error(0)
}
