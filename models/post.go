package models

import (
	"time"

	"network/pkg/snowflake"

	"gorm.io/gorm"
)

// Post 动态
// id 使用雪花算法生成，单调递增，按 id 倒序即按发布时间倒序
type Post struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	Author *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeCreate(*gorm.DB) error {
	if p.ID == 0 {
		p.ID = snowflake.GenID()
	}
	return nil
}
