package followerapp

import (
	"context"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"yatube/internal/config"
	followerEntity "yatube/internal/core/follower"
	userEntity "yatube/internal/core/user"
	followerPort "yatube/internal/ports/follower"
)

// FollowerService maintains the follow graph.
type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
}

func NewFollowerService(repo followerPort.FollowerRepository) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
	}
}

// FollowUser adds the edge followerID -> followeeID and reports whether a new
// edge was stored. Self-follows and existing edges are silent no-ops.
func (s *FollowerService) FollowUser(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	if followerID == followeeID {
		config.Logger.Info("Self-follow ignored", zap.String("userID", followerID.String()))
		return false, nil
	}

	exists, err := s.FollowerRepository.Exists(ctx, followerID, followeeID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	created, err := s.FollowerRepository.Create(ctx, &followerEntity.Follow{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     followeeID,
		FollowerID: followerID,
	})
	if err != nil {
		return false, err
	}
	if created {
		config.Logger.Info("User followed",
			zap.String("followerID", followerID.String()),
			zap.String("followeeID", followeeID.String()))
	}
	return created, nil
}

// UnfollowUser removes the edge if present.
func (s *FollowerService) UnfollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return s.FollowerRepository.Delete(ctx, followerID, followeeID)
}

func (s *FollowerService) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return s.FollowerRepository.Exists(ctx, followerID, followeeID)
}

// FollowedAuthors returns the users whose posts make up userID's following
// feed.
func (s *FollowerService) FollowedAuthors(ctx context.Context, userID uuid.UUID) ([]*userEntity.User, error) {
	users, err := s.FollowerRepository.FindFollowed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*userEntity.User{}
	}
	return users, nil
}

func (s *FollowerService) Followers(ctx context.Context, userID uuid.UUID) ([]*userEntity.User, error) {
	users, err := s.FollowerRepository.FindFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*userEntity.User{}
	}
	return users, nil
}

// FollowCounts returns how many users follow userID and how many userID
// follows.
func (s *FollowerService) FollowCounts(ctx context.Context, userID uuid.UUID) (followers, followed int64, err error) {
	followers, err = s.FollowerRepository.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	followed, err = s.FollowerRepository.CountFollowed(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	return followers, followed, nil
}
