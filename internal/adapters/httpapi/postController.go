package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/core/errs"
	postapp "yatube/internal/core/post/service"
)

type PostController struct {
	pc PostUseCase
	gc GroupUseCase
	uc UserUseCase
}

func NewPostController(pc PostUseCase, gc GroupUseCase, uc UserUseCase) *PostController {
	return &PostController{pc: pc, gc: gc, uc: uc}
}

type postForm struct {
	Text  string `json:"text" form:"text"`
	Group string `json:"group" form:"group"`
	Image string `json:"image" form:"image"`
}

func (f postForm) input() postapp.PostInput {
	return postapp.PostInput{Text: f.Text, Group: f.Group, Image: f.Image}
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	viewer, _ := middleware.UserID(c)
	res, err := ctl.pc.GetPost(c.Request.Context(), id, viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) CreateForm(c *gin.Context) {
	groups, err := ctl.gc.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "New post", "is_edit": false, "groups": groups})
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req postForm
	if err := c.ShouldBind(&req); err != nil {
		badForm(c, err)
		return
	}
	userID, _ := middleware.UserID(c)
	res, err := ctl.pc.CreatePost(c.Request.Context(), userID, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(res.Author.Username))
}

func (ctl *PostController) EditForm(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)
	p, err := ctl.pc.GetOwnPost(c.Request.Context(), userID, id)
	if errors.Is(err, errs.ErrForbidden) {
		c.Redirect(http.StatusFound, detailURL(id))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	groups, err := ctl.gc.ListGroups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": "Edit post", "is_edit": true, "post": p, "groups": groups})
}

func (ctl *PostController) EditPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req postForm
	if err := c.ShouldBind(&req); err != nil {
		badForm(c, err)
		return
	}
	userID, _ := middleware.UserID(c)
	_, err := ctl.pc.EditPost(c.Request.Context(), userID, id, req.input())
	if err != nil && !errors.Is(err, errs.ErrForbidden) {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, detailURL(id))
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	userID, _ := middleware.UserID(c)
	err := ctl.pc.DeletePost(c.Request.Context(), userID, id)
	if errors.Is(err, errs.ErrForbidden) {
		c.Redirect(http.StatusFound, detailURL(id))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	u, err := ctl.uc.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(u.Username))
}

// AddComment ignores an empty comment and returns to the post either way.
func (ctl *PostController) AddComment(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text" form:"text"`
	}
	if err := c.ShouldBind(&req); err != nil {
		badForm(c, err)
		return
	}
	userID, _ := middleware.UserID(c)
	_, err := ctl.pc.AddComment(c.Request.Context(), userID, id, req.Text)
	if err != nil && !errs.IsValidation(err) {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, detailURL(id))
}
