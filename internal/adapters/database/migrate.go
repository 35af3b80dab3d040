package database

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"yatube/internal/core/comment"
	"yatube/internal/core/errs"
	"yatube/internal/core/follower"
	"yatube/internal/core/group"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follow{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}

// notFound maps gorm's missing-record error onto errs.ErrNotFound.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(errs.ErrNotFound, what)
	}
	return errors.Wrap(err, what)
}
