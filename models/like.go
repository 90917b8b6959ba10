package models

import "time"

// Like 点赞记录
// 唯一键: user_id + post_id
type Like struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_post,priority:1" json:"user_id"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:uk_user_post,priority:2;index:idx_post_id" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// LikeCount 按动态聚合的点赞数
type LikeCount struct {
	PostID int64 `gorm:"column:post_id"`
	Count  int64 `gorm:"column:cnt"`
}
