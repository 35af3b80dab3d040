package database

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"yatube/internal/core/follower"
	"yatube/internal/core/user"
)

// FollowerRepositoryDatabase implements FollowerRepository on gorm.
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

// Create relies on the unique (follower_id, user_id) index: a concurrent
// duplicate insert is skipped, not reported.
func (repo *FollowerRepositoryDatabase) Create(ctx context.Context, f *follower.Follow) (bool, error) {
	res := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(f)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "create follow")
	}
	return res.RowsAffected > 0, nil
}

func (repo *FollowerRepositoryDatabase) Delete(ctx context.Context, followerID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND user_id = ?", followerID.String(), userID.String()).
		Delete(&follower.Follow{}).Error; err != nil {
		return errors.Wrap(err, "delete follow")
	}
	return nil
}

func (repo *FollowerRepositoryDatabase) Exists(ctx context.Context, followerID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&follower.Follow{}).
		Where("follower_id = ? AND user_id = ?", followerID.String(), userID.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check follow")
	}
	return count > 0, nil
}

func (repo *FollowerRepositoryDatabase) FindFollowed(ctx context.Context, followerID uuid.UUID) ([]*user.User, error) {
	var users []*user.User
	if err := repo.db.WithContext(ctx).
		Select("users.*").
		Joins("JOIN follows ON follows.user_id = users.id").
		Where("follows.follower_id = ?", followerID.String()).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "find followed users")
	}
	return users, nil
}

func (repo *FollowerRepositoryDatabase) FindFollowers(ctx context.Context, userID uuid.UUID) ([]*user.User, error) {
	var users []*user.User
	if err := repo.db.WithContext(ctx).
		Select("users.*").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.user_id = ?", userID.String()).
		Order("users.username ASC").
		Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "find followers")
	}
	return users, nil
}

func (repo *FollowerRepositoryDatabase) CountFollowed(ctx context.Context, followerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&follower.Follow{}).
		Where("follower_id = ?", followerID.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count followed users")
	}
	return count, nil
}

func (repo *FollowerRepositoryDatabase) CountFollowers(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&follower.Follow{}).
		Where("user_id = ?", userID.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count followers")
	}
	return count, nil
}
