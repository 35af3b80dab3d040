package post

import (
	"time"

	"github.com/gofrs/uuid"
	"yatube/internal/core/group"
	"yatube/internal/core/user"
)

// Post ids are sequential so that equal timestamps still order by insertion.
type Post struct {
	ID        uint64       `gorm:"primaryKey;autoIncrement"`
	Text      string       `gorm:"type:text;not null"`
	Image     string       `gorm:"type:varchar(255)"`
	UserID    uuid.UUID    `gorm:"type:char(36);not null;index"`
	User      user.User    `gorm:"foreignKey:UserID"`
	GroupID   *uuid.UUID   `gorm:"type:char(36);index"`
	Group     *group.Group `gorm:"foreignKey:GroupID"`
	CreatedAt time.Time    `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}
