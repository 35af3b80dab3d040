package postapp

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"yatube/internal/config"
	commentEntity "yatube/internal/core/comment"
	"yatube/internal/core/errs"
	postEntity "yatube/internal/core/post"
	commentPort "yatube/internal/ports/comment"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
)

const titleLength = 30

// PostInput is a create/edit submission. Group is a group id or empty.
type PostInput struct {
	Text  string
	Group string
	Image string
}

type PostService struct {
	PostRepository    postPort.PostRepository
	CommentRepository commentPort.CommentRepository
	GroupRepository   groupPort.GroupRepository
}

func NewPostService(
	postRepo postPort.PostRepository,
	commentRepo commentPort.CommentRepository,
	groupRepo groupPort.GroupRepository,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		CommentRepository: commentRepo,
		GroupRepository:   groupRepo,
	}
}

// CreatePost stores a new post by authorID.
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, in PostInput) (*postPort.PostDTO, error) {
	text, groupID, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, &postEntity.Post{
		Text:    text,
		Image:   in.Image,
		UserID:  authorID,
		GroupID: groupID,
	})
	if err != nil {
		return nil, err
	}
	config.Logger.Info("Post created", zap.Uint64("postID", created.ID), zap.String("authorID", authorID.String()))

	full, err := s.PostRepository.FindByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(full), nil
}

// GetPost loads a post with its comments as seen by viewerID (uuid.Nil for
// anonymous viewers).
func (s *PostService) GetPost(ctx context.Context, id uint64, viewerID uuid.UUID) (*postPort.PostDetailDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentRepository.FindByPostID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &postPort.PostDetailDTO{
		Post:     postPort.ToDTO(p),
		Title:    truncate(p.Text, titleLength),
		IsAuthor: viewerID != uuid.Nil && viewerID == p.UserID,
		Comments: commentPort.ToDTOs(comments),
	}, nil
}

// GetOwnPost loads a post for editing; errs.ErrForbidden unless editorID
// wrote it.
func (s *PostService) GetOwnPost(ctx context.Context, editorID uuid.UUID, id uint64) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != editorID {
		return nil, errs.ErrForbidden
	}
	return postPort.ToDTO(p), nil
}

// EditPost replaces text, group and image of a post owned by editorID.
func (s *PostService) EditPost(ctx context.Context, editorID uuid.UUID, id uint64, in PostInput) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != editorID {
		config.Logger.Info("Edit by non-owner refused", zap.Uint64("postID", id), zap.String("editorID", editorID.String()))
		return nil, errs.ErrForbidden
	}

	text, groupID, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	p.Text = text
	p.GroupID = groupID
	if in.Image != "" {
		p.Image = in.Image
	}
	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, err
	}

	updated, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(updated), nil
}

// DeletePost removes a post owned by editorID along with its comments.
func (s *PostService) DeletePost(ctx context.Context, editorID uuid.UUID, id uint64) error {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != editorID {
		return errs.ErrForbidden
	}
	if err := s.PostRepository.Delete(ctx, id); err != nil {
		return err
	}
	config.Logger.Info("Post deleted", zap.Uint64("postID", id))
	return nil
}

// AddComment attaches a comment by authorID to post postID.
func (s *PostService) AddComment(ctx context.Context, authorID uuid.UUID, postID uint64, text string) (*commentPort.CommentDTO, error) {
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.Invalid("text", "This field is required.")
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		ID:     uuid.Must(uuid.NewV4()),
		PostID: postID,
		UserID: authorID,
		Text:   text,
	})
	if err != nil {
		return nil, err
	}
	return &commentPort.CommentDTO{
		ID:        c.ID.String(),
		PostID:    c.PostID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}, nil
}

func (s *PostService) validate(ctx context.Context, in PostInput) (string, *uuid.UUID, error) {
	fields := map[string]string{}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		fields["text"] = "This field is required."
	}

	var groupID *uuid.UUID
	if raw := strings.TrimSpace(in.Group); raw != "" {
		id, err := uuid.FromString(raw)
		if err == nil {
			_, err = s.GroupRepository.FindByID(ctx, id)
		}
		switch {
		case err == nil:
			groupID = &id
		case errors.Is(err, errs.ErrNotFound), id == uuid.Nil:
			fields["group"] = "Select a valid choice."
		default:
			return "", nil, err
		}
	}

	if len(fields) > 0 {
		return "", nil, &errs.ValidationError{Fields: fields}
	}
	return text, groupID, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
