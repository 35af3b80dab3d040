package database

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"yatube/internal/core/comment"
	"yatube/internal/core/feed"
	"yatube/internal/core/post"
)

// PostRepositoryDatabase evaluates feed queries with SQL.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	// A map is used so that clearing the group writes NULL.
	if err := repo.db.WithContext(ctx).
		Model(&post.Post{ID: p.ID}).
		Updates(map[string]any{
			"text":     p.Text,
			"image":    p.Image,
			"group_id": p.GroupID,
		}).Error; err != nil {
		return errors.Wrap(err, "update post")
	}
	return nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint64) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
			return errors.Wrap(err, "delete post comments")
		}
		res := tx.Delete(&post.Post{}, id)
		if res.Error != nil {
			return errors.Wrap(res.Error, "delete post")
		}
		if res.RowsAffected == 0 {
			return notFound(gorm.ErrRecordNotFound, "delete post")
		}
		return nil
	})
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint64) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Group").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err, "find post by id")
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, q feed.Query) (int64, error) {
	if q.Empty() {
		return 0, nil
	}
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&post.Post{}).
		Scopes(feedScope(q)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count posts")
	}
	return count, nil
}

func (repo *PostRepositoryDatabase) Find(ctx context.Context, q feed.Query, offset, limit int) ([]*post.Post, error) {
	if q.Empty() || limit <= 0 {
		return []*post.Post{}, nil
	}
	var posts []*post.Post
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Group").
		Scopes(feedScope(q)).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	return posts, nil
}

func feedScope(q feed.Query) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if groupID, ok := q.Group(); ok {
			db = db.Where("group_id = ?", groupID.String())
		}
		if authors, ok := q.Authors(); ok {
			db = db.Where("user_id IN ?", uuidStrings(authors))
		}
		return db
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
