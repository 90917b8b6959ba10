package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"network/middleware"
	"network/pkg/context"
	"network/pkg/response"
	"network/service"
	"network/types"

	"github.com/gin-gonic/gin"
)

type Follow struct {
	FollowService service.IFollowService
	TokenService  service.ITokenService
}

func (f *Follow) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(f.TokenService)
	r.POST("/follow", authorize, context.Wrap(f.FollowUser))
	r.POST("/unfollow", authorize, context.Wrap(f.UnfollowUser))
}

// FollowUser 关注用户，成功跳转其主页，用户不存在跳转首页
func (f *Follow) FollowUser(c *gin.Context) error {
	userID, username, err := f.target(c)
	if err != nil {
		return err
	}

	followee, err := f.FollowService.Follow(c.Request.Context(), userID, username)
	if errors.Is(err, service.ErrUserNotFound) {
		response.Redirect(c, "/")
		return nil
	}
	if err != nil {
		return err
	}

	response.Redirect(c, profilePath(followee.ID))
	return nil
}

// UnfollowUser 取消关注，用户或关注关系不存在时跳转首页
func (f *Follow) UnfollowUser(c *gin.Context) error {
	userID, username, err := f.target(c)
	if err != nil {
		return err
	}

	followee, err := f.FollowService.Unfollow(c.Request.Context(), userID, username)
	if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrFollowNotFound) {
		response.Redirect(c, "/")
		return nil
	}
	if err != nil {
		return err
	}

	response.Redirect(c, profilePath(followee.ID))
	return nil
}

func (f *Follow) target(c *gin.Context) (int64, string, error) {
	userID, err := context.GetUserID(c)
	if err != nil {
		return 0, "", response.NewError(http.StatusUnauthorized, "Authentication required.")
	}

	var req types.FollowRequest
	if err := c.ShouldBind(&req); err != nil {
		return 0, "", response.NewError(http.StatusBadRequest, "Invalid form.")
	}
	return userID, strings.TrimSpace(req.Username), nil
}

func profilePath(userID int64) string {
	return fmt.Sprintf("/profile/%d", userID)
}
