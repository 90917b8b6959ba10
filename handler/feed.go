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

type Feed struct {
	FeedService  service.IFeedService
	TokenService service.ITokenService
}

func (f *Feed) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth(f.TokenService)
	r.GET("/", optional, context.Wrap(f.Index))
	r.GET("/following", middleware.Auth(f.TokenService), context.Wrap(f.Following))
	r.GET("/profile/:user_id", optional, context.Wrap(f.Profile))
}

// Index 全站动态
func (f *Feed) Index(c *gin.Context) error {
	feed, err := f.FeedService.Global(c.Request.Context(), context.OptionalUserID(c), c.Query("page"))
	if err != nil {
		return err
	}
	response.Success(c, toFeedResponse(feed))
	return nil
}

// Following 关注的人的动态
func (f *Feed) Following(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "Authentication required.")
	}

	feed, err := f.FeedService.Following(c.Request.Context(), userID, c.Query("page"))
	if err != nil {
		return err
	}
	response.Success(c, toFeedResponse(feed))
	return nil
}

// Profile 个人主页
func (f *Feed) Profile(c *gin.Context) error {
	userID, err := parseID(c, "user_id", "Invalid user id.")
	if err != nil {
		return err
	}

	profile, err := f.FeedService.Profile(c.Request.Context(), context.OptionalUserID(c), userID, c.Query("page"))
	if errors.Is(err, service.ErrUserNotFound) {
		return response.NewError(http.StatusNotFound, "User not found.")
	}
	if err != nil {
		return err
	}

	response.Success(c, types.ProfileResponse{
		UserID:         profile.User.ID,
		Username:       profile.User.Username,
		FollowersCount: profile.FollowersCount,
		FollowingCount: profile.FollowingCount,
		IsFollowing:    profile.IsFollowing,
		FeedResponse:   toFeedResponse(profile.Feed),
	})
	return nil
}
