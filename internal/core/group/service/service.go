package groupapp

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
	"yatube/internal/config"
	"yatube/internal/core/errs"
	groupEntity "yatube/internal/core/group"
	groupPort "yatube/internal/ports/group"
)

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

func (s *GroupService) CreateGroup(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errs.Invalid("title", "This field is required.")
	}
	if !slugPattern.MatchString(slug) {
		return nil, errs.Invalid("slug", "Enter a valid slug of letters, numbers, underscores or hyphens.")
	}

	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	config.Logger.Info("Group created", zap.String("slug", g.Slug))
	return groupPort.ToDTO(g), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupEntity.Group, error) {
	return s.GroupRepository.FindBySlug(ctx, slug)
}

// ListGroups returns every group ordered by title.
func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return groupPort.ToDTOs(groups), nil
}
