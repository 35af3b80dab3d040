package comment

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"yatube/internal/core/post"
	"yatube/internal/core/user"
)

type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    uint64    `gorm:"not null;index"`
	Post      post.Post `gorm:"foreignKey:PostID"`
	UserID    uuid.UUID `gorm:"type:char(36);not null"`
	User      user.User `gorm:"foreignKey:UserID"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
