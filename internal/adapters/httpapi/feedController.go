package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yatube/internal/adapters/httpapi/middleware"
)

type FeedController struct {
	fc FeedUseCase
	gc GroupUseCase
}

func NewFeedController(fc FeedUseCase, gc GroupUseCase) *FeedController {
	return &FeedController{fc: fc, gc: gc}
}

func (ctl *FeedController) Index(c *gin.Context) {
	page, err := ctl.fc.GlobalFeed(c.Request.Context(), c.Query("page"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "Latest updates", "page_obj": page})
}

func (ctl *FeedController) GroupList(c *gin.Context) {
	groups, err := ctl.gc.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (ctl *FeedController) GroupPosts(c *gin.Context) {
	res, err := ctl.fc.GroupFeed(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *FeedController) Profile(c *gin.Context) {
	viewer, _ := middleware.UserID(c)
	res, err := ctl.fc.ProfileFeed(c.Request.Context(), c.Param("username"), viewer, c.Query("page"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *FeedController) FollowIndex(c *gin.Context) {
	viewer, _ := middleware.UserID(c)
	page, err := ctl.fc.FollowingFeed(c.Request.Context(), viewer, c.Query("page"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "Subscriptions", "page_obj": page})
}
