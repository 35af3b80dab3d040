package comment

import (
	"context"
	"time"

	"yatube/internal/core/comment"
	userPort "yatube/internal/ports/user"
)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	// FindByPostID returns the post's comments, oldest first.
	FindByPostID(ctx context.Context, postID uint64) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        string            `json:"id"`
	PostID    uint64            `json:"post_id"`
	Author    *userPort.UserDTO `json:"author"`
	Text      string            `json:"text"`
	CreatedAt time.Time         `json:"created_at"`
}

func ToDTO(c *comment.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID.String(),
		PostID:    c.PostID,
		Author:    userPort.ToDTO(&c.User),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func ToDTOs(comments []*comment.Comment) []*CommentDTO {
	out := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, ToDTO(c))
	}
	return out
}
