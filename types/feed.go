package types

// FeedResponse 分页动态列表
type FeedResponse struct {
	Posts        []*PostItem `json:"posts"`
	Page         int         `json:"page"`
	NumPages     int         `json:"num_pages"`
	Count        int64       `json:"count"`
	HasNext      bool        `json:"has_next"`
	HasPrevious  bool        `json:"has_previous"`
	LikedPostIDs []string    `json:"liked_post_ids"` // 转字符串防止精度丢失
}

// ProfileResponse 个人主页
type ProfileResponse struct {
	UserID         int64  `json:"user_id,string"`
	Username       string `json:"username"`
	FollowersCount int64  `json:"followers_count"`
	FollowingCount int64  `json:"following_count"`
	IsFollowing    bool   `json:"is_following"`
	FeedResponse
}
