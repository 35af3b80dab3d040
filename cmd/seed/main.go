// Command seed fills the configured database with demo users, groups,
// posts, comments and follows.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/config"
	"yatube/internal/core/errs"
	followerapp "yatube/internal/core/follower/service"
	groupapp "yatube/internal/core/group/service"
	postapp "yatube/internal/core/post/service"
	userapp "yatube/internal/core/user/service"
	groupPort "yatube/internal/ports/group"
)

func main() {
	numUsers := flag.Int("users", 20, "number of users to create")
	postsPerUser := flag.Int("posts", 15, "posts per user")
	flag.Parse()

	config.InitLogger()
	config.Init()
	config.InitDB()
	if err := dbadapter.Migrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(config.DB)

	s := seeder{
		logger:    config.Logger,
		users:     userapp.NewUserService(userRepo, []byte(config.App.JWTSecret)),
		groups:    groupapp.NewGroupService(groupRepo),
		posts:     postapp.NewPostService(dbadapter.NewPostRepositoryDatabase(config.DB), dbadapter.NewCommentRepositoryDatabase(config.DB), groupRepo),
		followers: followerapp.NewFollowerService(dbadapter.NewFollowerRepositoryDatabase(config.DB)),
	}
	s.run(context.Background(), *numUsers, *postsPerUser)
}

type seeder struct {
	logger    *zap.Logger
	users     *userapp.UserService
	groups    *groupapp.GroupService
	posts     *postapp.PostService
	followers *followerapp.FollowerService
}

func (s seeder) run(ctx context.Context, numUsers, postsPerUser int) {
	groups := s.seedGroups(ctx)

	s.logger.Info("Creating users", zap.Int("count", numUsers))
	userIDs := make([]string, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		username := fmt.Sprintf("testuser%d", i)
		u, err := s.users.RegisterUser(ctx, username, "Test", fmt.Sprintf("User %d", i), "password")
		if err != nil {
			s.logger.Error("Error creating user", zap.String("username", username), zap.Error(err))
			continue
		}
		userIDs = append(userIDs, u.ID)
	}
	s.logger.Info("Finished creating users", zap.Int("count", len(userIDs)))

	// every user follows the next half of the ring
	follows := 0
	for i, followerID := range userIDs {
		for k := 1; k <= len(userIDs)/2; k++ {
			followeeID := userIDs[(i+k)%len(userIDs)]
			created, err := s.followers.FollowUser(ctx, mustUUID(followerID), mustUUID(followeeID))
			if err != nil {
				s.logger.Error("Error following user", zap.String("followerID", followerID), zap.String("followeeID", followeeID), zap.Error(err))
				continue
			}
			if created {
				follows++
			}
		}
	}
	s.logger.Info("Follow setup completed", zap.Int("count", follows))

	postCount := 0
	for i, uid := range userIDs {
		for p := 1; p <= postsPerUser; p++ {
			in := postapp.PostInput{Text: fmt.Sprintf("Post %d by testuser%d", p, i)}
			if len(groups) > 0 && p%2 == 0 {
				in.Group = groups[(i+p)%len(groups)].ID
			}
			dto, err := s.posts.CreatePost(ctx, mustUUID(uid), in)
			if err != nil {
				s.logger.Error("Error creating post", zap.String("userID", uid), zap.Error(err))
				continue
			}
			postCount++
			if p == 1 && len(userIDs) > 1 {
				commenter := userIDs[(i+1)%len(userIDs)]
				if _, err := s.posts.AddComment(ctx, mustUUID(commenter), dto.ID, "Nice post!"); err != nil {
					s.logger.Error("Error adding comment", zap.Uint64("postID", dto.ID), zap.Error(err))
				}
			}
		}
	}
	s.logger.Info("Test data creation completed", zap.Int("posts", postCount))
}

func (s seeder) seedGroups(ctx context.Context) []*groupPort.GroupDTO {
	specs := []struct{ title, slug, description string }{
		{"Cats", "cats", "Everything about cats"},
		{"Travel", "travel", "Notes from the road"},
		{"Go", "golang", "Gophers talking shop"},
	}

	out := make([]*groupPort.GroupDTO, 0, len(specs))
	for _, g := range specs {
		dto, err := s.groups.CreateGroup(ctx, g.title, g.slug, g.description)
		if errors.Is(err, errs.ErrConflict) {
			existing, lookupErr := s.groups.GetBySlug(ctx, g.slug)
			if lookupErr == nil {
				dto, err = groupPort.ToDTO(existing), nil
			}
		}
		if err != nil {
			s.logger.Warn("Skipping group", zap.String("slug", g.slug), zap.Error(err))
			continue
		}
		out = append(out, dto)
	}
	return out
}

func mustUUID(id string) uuid.UUID {
	return uuid.Must(uuid.FromString(id))
}
