package dao

import (
	"context"
	"errors"
	"fmt"

	"network/models"

	"gorm.io/gorm"
)

type FollowDAO struct {
	Repo[models.Follow]
}

func NewFollowDAO(db *gorm.DB) *FollowDAO {
	return &FollowDAO{
		Repo: NewRepo[models.Follow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *FollowDAO) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
}

// Create 建立关注关系，已存在时不报错；返回是否新建
func (d *FollowDAO) Create(ctx context.Context, followerID, followeeID int64) (bool, error) {
	exist, err := d.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("dao.FollowDAO.Create: %w", err)
	}
	if exist {
		return false, nil
	}

	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	err = d.Db.WithContext(ctx).Create(&follow).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 并发关注，唯一索引兜底
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("dao.FollowDAO.Create: %w", err)
	}
	return true, nil
}

// Remove 取消关注，返回是否删除了记录
func (d *FollowDAO) Remove(ctx context.Context, followerID, followeeID int64) (bool, error) {
	affected, err := d.Delete(ctx, "follower_id = ? AND followee_id = ?", followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("dao.FollowDAO.Remove: %w", err)
	}
	return affected > 0, nil
}

// GetFollowerCount 获取粉丝数
func (d *FollowDAO) GetFollowerCount(ctx context.Context, userID int64) (int64, error) {
	return d.QueryCount(ctx, "followee_id = ?", userID)
}

// GetFollowingCount 获取关注数
func (d *FollowDAO) GetFollowingCount(ctx context.Context, userID int64) (int64, error) {
	return d.QueryCount(ctx, "follower_id = ?", userID)
}
