package follower

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"yatube/internal/core/user"
)

// Follow is a directed edge: Follower reads the posts of User.
type Follow struct {
	ID         uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID     uuid.UUID `gorm:"type:char(36);not null;index:idx_follow_user;index:uniq_follow,unique,priority:2"`
	User       user.User `gorm:"foreignKey:UserID"`
	FollowerID uuid.UUID `gorm:"type:char(36);not null;index:uniq_follow,unique,priority:1"`
	Follower   user.User `gorm:"foreignKey:FollowerID"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (f *Follow) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.Must(uuid.NewV4())
	}
	return nil
}
