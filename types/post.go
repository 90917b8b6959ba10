package types

import "time"

type CreatePostRequest struct {
	Content string `form:"content" json:"content"`
}

type EditPostRequest struct {
	Content string `json:"content" binding:"required"`
}

type PostItem struct {
	ID        int64     `json:"id,string"` // 转字符串防止精度丢失
	UserID    int64     `json:"user_id,string"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	LikeCount int64     `json:"like_count"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
