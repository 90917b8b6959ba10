package models

import (
	"time"

	"network/pkg/snowflake"

	"gorm.io/gorm"
)

type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(254);not null;default:''" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"` // bcrypt 哈希
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == 0 {
		u.ID = snowflake.GenUserID()
	}
	return nil
}
