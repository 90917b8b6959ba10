package handler

import (
	"net/http"
	"strconv"

	"network/models"
	"network/pkg/response"
	"network/service"
	"network/types"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, key string, msg string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, msg)
	}
	return id, nil
}

func toFeedResponse(feed *service.FeedPage) types.FeedResponse {
	posts := make([]*types.PostItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		posts = append(posts, toPostItem(item))
	}
	return types.FeedResponse{
		Posts:        posts,
		Page:         feed.Page.Number,
		NumPages:     feed.Page.NumPages,
		Count:        feed.Page.Count,
		HasNext:      feed.Page.HasNext(),
		HasPrevious:  feed.Page.HasPrevious(),
		LikedPostIDs: formatIDs(feed.LikedPostIDs),
	}
}

func formatIDs(ids []int64) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		result = append(result, strconv.FormatInt(id, 10))
	}
	return result
}

func toPostItem(item *service.FeedItem) *types.PostItem {
	post := item.Post
	result := &types.PostItem{
		ID:        post.ID,
		UserID:    post.UserID,
		Content:   post.Content,
		LikeCount: item.LikeCount,
		Liked:     item.Liked,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if post.Author != nil {
		result.Username = post.Author.Username
	}
	return result
}

func toUserInfo(user *models.User) types.UserInfo {
	return types.UserInfo{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
