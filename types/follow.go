package types

type FollowRequest struct {
	Username string `form:"userfollow" json:"userfollow"`
}
