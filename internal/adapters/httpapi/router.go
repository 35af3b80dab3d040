package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/config"
	postapp "yatube/internal/core/post/service"
	userEntity "yatube/internal/core/user"
	"yatube/internal/ports/cache"
	commentPort "yatube/internal/ports/comment"
	feedPort "yatube/internal/ports/feed"
	groupPort "yatube/internal/ports/group"
	postPort "yatube/internal/ports/post"
	userPort "yatube/internal/ports/user"
)

// IndexCachePrefix namespaces cached global feed pages.
const IndexCachePrefix = "index_page:"

type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, firstName, lastName, password string) (*userPort.UserDTO, error)
	ParseToken(token string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*userEntity.User, error)
	GetByUsername(ctx context.Context, username string) (*userEntity.User, error)
}

type GroupUseCase interface {
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, in postapp.PostInput) (*postPort.PostDTO, error)
	GetPost(ctx context.Context, id uint64, viewerID uuid.UUID) (*postPort.PostDetailDTO, error)
	GetOwnPost(ctx context.Context, editorID uuid.UUID, id uint64) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, editorID uuid.UUID, id uint64, in postapp.PostInput) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, editorID uuid.UUID, id uint64) error
	AddComment(ctx context.Context, authorID uuid.UUID, postID uint64, text string) (*commentPort.CommentDTO, error)
}

type FeedUseCase interface {
	GlobalFeed(ctx context.Context, page string) (*feedPort.PageDTO, error)
	GroupFeed(ctx context.Context, slug, page string) (*feedPort.GroupFeedDTO, error)
	ProfileFeed(ctx context.Context, username string, viewerID uuid.UUID, page string) (*feedPort.ProfileFeedDTO, error)
	FollowingFeed(ctx context.Context, viewerID uuid.UUID, page string) (*feedPort.PageDTO, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	UnfollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error
}

// SetupRoutes wires the use cases into a gin engine. pages backs the cached
// global feed; origins, when set, are allowed cross-origin access.
func SetupRoutes(
	userUC UserUseCase,
	groupUC GroupUseCase,
	postUC PostUseCase,
	feedUC FeedUseCase,
	followerUC FollowerUseCase,
	pages cache.PageCache,
	origins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.AccessLog(config.Logger))
	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.Authenticate(userUC))

	uc := NewUserController(userUC)
	fc := NewFeedController(feedUC, groupUC)
	pc := NewPostController(postUC, groupUC, userUC)
	flc := NewFollowerController(followerUC, userUC)

	r.POST("/auth/signup/", uc.RegisterUser)
	r.GET("/auth/login/", uc.LoginForm)
	r.POST("/auth/login/", uc.LoginUser)
	r.POST("/auth/logout/", uc.LogoutUser)

	r.GET("/", middleware.CachePage(pages, IndexCachePrefix), fc.Index)
	r.GET("/groups/", fc.GroupList)
	r.GET("/group/:slug/", fc.GroupPosts)
	r.GET("/profile/:username/", fc.Profile)
	r.GET("/posts/:id/", pc.PostDetail)

	auth := r.Group("/", middleware.LoginRequired())
	auth.GET("/create/", pc.CreateForm)
	auth.POST("/create/", pc.CreatePost)
	auth.GET("/posts/:id/edit/", pc.EditForm)
	auth.POST("/posts/:id/edit/", pc.EditPost)
	auth.POST("/posts/:id/delete/", pc.DeletePost)
	auth.POST("/posts/:id/comment/", pc.AddComment)
	auth.GET("/follow/", fc.FollowIndex)
	auth.POST("/profile/:username/follow/", flc.FollowUser)
	auth.POST("/profile/:username/unfollow/", flc.UnfollowUser)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found", "path": c.Request.URL.Path})
	})
	return r
}
