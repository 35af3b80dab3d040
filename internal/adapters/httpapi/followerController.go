package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yatube/internal/adapters/httpapi/middleware"
)

const followIndexURL = "/follow/"

type FollowerController struct {
	fc FollowerUseCase
	uc UserUseCase
}

func NewFollowerController(fc FollowerUseCase, uc UserUseCase) *FollowerController {
	return &FollowerController{fc: fc, uc: uc}
}

// FollowUser subscribes the caller to :username. A repeated or self follow
// sends the caller back to their own profile.
func (ctl *FollowerController) FollowUser(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := ctl.uc.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	userID, _ := middleware.UserID(c)
	created, err := ctl.fc.FollowUser(ctx, userID, author.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if created {
		c.Redirect(http.StatusFound, followIndexURL)
		return
	}

	me, err := ctl.uc.GetByID(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(me.Username))
}

func (ctl *FollowerController) UnfollowUser(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := ctl.uc.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	userID, _ := middleware.UserID(c)
	if err := ctl.fc.UnfollowUser(ctx, userID, author.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, followIndexURL)
}
