package handler

import (
	"errors"
	"net/http"

	"network/middleware"
	"network/pkg/context"
	"network/pkg/response"
	"network/service"

	"github.com/gin-gonic/gin"
)

type Like struct {
	LikeService  service.ILikeService
	TokenService service.ITokenService
}

func (l *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(l.TokenService)
	g := r.Group("/posts")
	g.POST("/:post_id/like", authorize, context.Wrap(l.AddLike))
	g.POST("/:post_id/unlike", authorize, context.Wrap(l.RemoveLike))
}

// AddLike 点赞
func (l *Like) AddLike(c *gin.Context) error {
	userID, postID, err := l.target(c)
	if err != nil {
		return err
	}

	created, err := l.LikeService.Like(c.Request.Context(), userID, postID)
	if err != nil {
		return l.mapError(err)
	}

	if !created {
		response.Message(c, http.StatusOK, "Already liked.", nil)
		return nil
	}
	response.Message(c, http.StatusOK, "Like added!", nil)
	return nil
}

// RemoveLike 取消点赞
func (l *Like) RemoveLike(c *gin.Context) error {
	userID, postID, err := l.target(c)
	if err != nil {
		return err
	}

	if err := l.LikeService.Unlike(c.Request.Context(), userID, postID); err != nil {
		return l.mapError(err)
	}

	response.Message(c, http.StatusOK, "Like removed!", nil)
	return nil
}

func (l *Like) target(c *gin.Context) (int64, int64, error) {
	userID, err := context.GetUserID(c)
	if err != nil {
		return 0, 0, response.NewError(http.StatusUnauthorized, "Authentication required.")
	}
	postID, err := parseID(c, "post_id", "Invalid post id.")
	if err != nil {
		return 0, 0, err
	}
	return userID, postID, nil
}

func (l *Like) mapError(err error) error {
	if errors.Is(err, service.ErrPostNotFound) {
		return response.NewError(http.StatusNotFound, "Post not found.")
	}
	return err
}
