package post

import (
	"context"
	"time"

	"yatube/internal/core/feed"
	"yatube/internal/core/post"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	userPort "yatube/internal/ports/user"
)

// PostRepository stores posts and evaluates feed queries. Find and Count
// order and filter exactly alike, newest first with id as tiebreak.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	Update(ctx context.Context, p *post.Post) error
	// Delete removes the post together with its comments.
	Delete(ctx context.Context, id uint64) error
	FindByID(ctx context.Context, id uint64) (*post.Post, error)
	Count(ctx context.Context, q feed.Query) (int64, error)
	Find(ctx context.Context, q feed.Query, offset, limit int) ([]*post.Post, error)
}

type PostDTO struct {
	ID        uint64              `json:"id"`
	Text      string              `json:"text"`
	Image     string              `json:"image,omitempty"`
	Author    *userPort.UserDTO   `json:"author"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

func ToDTO(p *post.Post) *PostDTO {
	if p == nil {
		return nil
	}
	return &PostDTO{
		ID:        p.ID,
		Text:      p.Text,
		Image:     p.Image,
		Author:    userPort.ToDTO(&p.User),
		Group:     groupPort.ToDTO(p.Group),
		CreatedAt: p.CreatedAt,
	}
}

func ToDTOs(posts []*post.Post) []*PostDTO {
	out := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToDTO(p))
	}
	return out
}

// PostDetailDTO is a single post with its discussion.
type PostDetailDTO struct {
	Post     *PostDTO                  `json:"post"`
	Title    string                    `json:"title"`
	IsAuthor bool                      `json:"is_author"`
	Comments []*commentPort.CommentDTO `json:"comments"`
}
