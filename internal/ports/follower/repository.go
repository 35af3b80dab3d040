package follower

import (
	"context"

	"github.com/gofrs/uuid"
	"yatube/internal/core/follower"
	"yatube/internal/core/user"
)

// FollowerRepository stores follow edges. The (follower, user) pair is
// unique at the storage level.
type FollowerRepository interface {
	// Create inserts the edge and reports false if it already existed.
	Create(ctx context.Context, f *follower.Follow) (bool, error)
	Delete(ctx context.Context, followerID, userID uuid.UUID) error
	Exists(ctx context.Context, followerID, userID uuid.UUID) (bool, error)
	// FindFollowed returns the users followerID follows.
	FindFollowed(ctx context.Context, followerID uuid.UUID) ([]*user.User, error)
	// FindFollowers returns the users following userID.
	FindFollowers(ctx context.Context, userID uuid.UUID) ([]*user.User, error)
	CountFollowed(ctx context.Context, followerID uuid.UUID) (int64, error)
	CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error)
}
