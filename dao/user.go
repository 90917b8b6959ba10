package dao

import (
	"context"
	"fmt"

	"network/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询，不存在时返回 gorm.ErrRecordNotFound
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

// Create 创建用户，用户名重复时返回 gorm.ErrDuplicatedKey
func (u *Users) Create(ctx context.Context, user *models.User) error {
	if err := u.Db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("dao.Users.Create: %w", err)
	}
	return nil
}
