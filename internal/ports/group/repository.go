package group

import (
	"context"

	"github.com/gofrs/uuid"
	"yatube/internal/core/group"
)

type GroupRepository interface {
	Create(ctx context.Context, g *group.Group) (*group.Group, error)
	FindByID(ctx context.Context, id uuid.UUID) (*group.Group, error)
	FindBySlug(ctx context.Context, slug string) (*group.Group, error)
	// List returns all groups ordered by title.
	List(ctx context.Context) ([]*group.Group, error)
}

type GroupDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func ToDTO(g *group.Group) *GroupDTO {
	if g == nil {
		return nil
	}
	return &GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}

func ToDTOs(groups []*group.Group) []*GroupDTO {
	out := make([]*GroupDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, ToDTO(g))
	}
	return out
}
