package follower

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"yatube/internal/core/follower"
	"yatube/internal/core/user"
)

type MockFollowerRepository struct {
	mock.Mock
}

func (m *MockFollowerRepository) Create(ctx context.Context, f *follower.Follow) (bool, error) {
	args := m.Called(ctx, f)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowerRepository) Delete(ctx context.Context, followerID, userID uuid.UUID) error {
	args := m.Called(ctx, followerID, userID)
	return args.Error(0)
}

func (m *MockFollowerRepository) Exists(ctx context.Context, followerID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, followerID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowerRepository) FindFollowed(ctx context.Context, followerID uuid.UUID) ([]*user.User, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockFollowerRepository) CountFollowed(ctx context.Context, followerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, followerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowerRepository) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowerRepository) FindFollowers(ctx context.Context, userID uuid.UUID) ([]*user.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*user.User), args.Error(1)
}
