package handler

import (
	"errors"
	"net/http"

	"network/middleware"
	"network/pkg/context"
	"network/pkg/response"
	"network/service"
	"network/types"

	"github.com/gin-gonic/gin"
)

type Post struct {
	PostService  service.IPostService
	TokenService service.ITokenService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(p.TokenService)
	g := r.Group("/posts")
	g.POST("", authorize, context.Wrap(p.CreatePost))
	g.POST("/:post_id/edit", authorize, context.Wrap(p.EditPost))
}

// CreatePost 发布动态，空内容不写入，均跳转首页
func (p *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Authentication required.")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Invalid form.")
	}

	if _, err := p.PostService.Create(c.Request.Context(), userID, req.Content); err != nil && !errors.Is(err, service.ErrEmptyContent) {
		return err
	}

	response.Redirect(c, "/")
	return nil
}

// EditPost 修改动态，仅作者本人
func (p *Post) EditPost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Authentication required.")
	}

	postID, err := parseID(c, "post_id", "Invalid post id.")
	if err != nil {
		return err
	}

	var req types.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "Content is required.")
	}

	content, err := p.PostService.Edit(c.Request.Context(), userID, postID, req.Content)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return response.NewError(http.StatusNotFound, "Post not found.")
	case errors.Is(err, service.ErrForbidden):
		return response.NewError(http.StatusForbidden, "Unauthorized")
	case errors.Is(err, service.ErrEmptyContent):
		return response.NewError(http.StatusBadRequest, "Content is required.")
	case err != nil:
		return err
	}

	response.Message(c, http.StatusOK, "Change successful", content)
	return nil
}
