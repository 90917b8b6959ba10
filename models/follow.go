package models

import (
	"time"
)

// Follow 关注关系 follower -> followee
// 唯一键: follower_id + followee_id
type Follow struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_followee,priority:1" json:"follower_id"`                       // 关注人
	FolloweeID int64     `gorm:"column:followee_id;not null;uniqueIndex:uk_follower_followee,priority:2;index:idx_followee_id" json:"followee_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
