package feedapp

import (
	"context"

	"github.com/gofrs/uuid"
	"yatube/internal/core/errs"
	"yatube/internal/core/feed"
	"yatube/internal/core/paginator"
	userEntity "yatube/internal/core/user"
	feedPort "yatube/internal/ports/feed"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// FollowGraph is the part of the follower service feeds depend on.
type FollowGraph interface {
	FollowedAuthors(ctx context.Context, userID uuid.UUID) ([]*userEntity.User, error)
	FollowCounts(ctx context.Context, userID uuid.UUID) (followers, followed int64, err error)
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}

// FeedService builds the paginated post lists of every feed view.
type FeedService struct {
	PostRepository  postPort.PostRepository
	GroupRepository groupPort.GroupRepository
	UserRepository  userPort.UserRepository
	Follows         FollowGraph
	Paginator       *paginator.Paginator
}

func NewFeedService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	follows FollowGraph,
) *FeedService {
	return &FeedService{
		PostRepository:  postRepo,
		GroupRepository: groupRepo,
		UserRepository:  userRepo,
		Follows:         follows,
		Paginator:       paginator.New(paginator.PerPage),
	}
}

// GlobalFeed pages through every post.
func (s *FeedService) GlobalFeed(ctx context.Context, page string) (*feedPort.PageDTO, error) {
	return s.page(ctx, feed.All(), page)
}

// GroupFeed pages through the posts of the group with slug.
func (s *FeedService) GroupFeed(ctx context.Context, slug, page string) (*feedPort.GroupFeedDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	pg, err := s.page(ctx, feed.All().InGroup(g.ID), page)
	if err != nil {
		return nil, err
	}
	return &feedPort.GroupFeedDTO{Group: groupPort.ToDTO(g), Page: pg}, nil
}

// ProfileFeed pages through the posts of username. viewerID is uuid.Nil for
// anonymous viewers, who are never reported as following.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, viewerID uuid.UUID, page string) (*feedPort.ProfileFeedDTO, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	pg, err := s.page(ctx, feed.All().ByAuthor(author.ID), page)
	if err != nil {
		return nil, err
	}

	followers, followed, err := s.Follows.FollowCounts(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != uuid.Nil {
		following, err = s.Follows.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &feedPort.ProfileFeedDTO{
		Author:         userPort.ToDTO(author),
		PostCount:      pg.Count,
		FollowersCount: followers,
		FollowingCount: followed,
		Following:      following,
		Page:           pg,
	}, nil
}

// FollowingFeed pages through the posts of every author viewerID follows.
func (s *FeedService) FollowingFeed(ctx context.Context, viewerID uuid.UUID, page string) (*feedPort.PageDTO, error) {
	if viewerID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	authors, err := s.Follows.FollowedAuthors(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(authors))
	for _, a := range authors {
		ids = append(ids, a.ID)
	}

	return s.page(ctx, feed.All().ByAuthors(ids...), page)
}

func (s *FeedService) page(ctx context.Context, q feed.Query, raw string) (*feedPort.PageDTO, error) {
	count, err := s.PostRepository.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	pg := s.Paginator.Paginate(count, raw)
	posts, err := s.PostRepository.Find(ctx, q, pg.Offset(), pg.Limit())
	if err != nil {
		return nil, err
	}
	return feedPort.NewPageDTO(pg, postPort.ToDTOs(posts)), nil
}
