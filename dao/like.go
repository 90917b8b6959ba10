package dao

import (
	"context"
	"errors"
	"fmt"

	"network/models"

	"gorm.io/gorm"
)

type LikeDAO struct {
	Repo[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{Repo: NewRepo[models.Like](db)}
}

// IsLiked 是否已点赞
func (d *LikeDAO) IsLiked(ctx context.Context, userID, postID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND post_id = ?", userID, postID)
}

// Create 点赞，已存在时不重复创建；返回是否新建
func (d *LikeDAO) Create(ctx context.Context, userID, postID int64) (bool, error) {
	liked, err := d.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("dao.LikeDAO.Create: %w", err)
	}
	if liked {
		return false, nil
	}

	like := models.Like{UserID: userID, PostID: postID}
	err = d.Db.WithContext(ctx).Create(&like).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("dao.LikeDAO.Create: %w", err)
	}
	return true, nil
}

// Remove 取消点赞，记录不存在时不报错
func (d *LikeDAO) Remove(ctx context.Context, userID, postID int64) error {
	if _, err := d.Delete(ctx, "user_id = ? AND post_id = ?", userID, postID); err != nil {
		return fmt.Errorf("dao.LikeDAO.Remove: %w", err)
	}
	return nil
}

// LikedPostIDs 用户在给定动态中点过赞的动态 ID
func (d *LikeDAO) LikedPostIDs(ctx context.Context, userID int64, postIDs []int64) ([]int64, error) {
	ids := make([]int64, 0)
	if len(postIDs) == 0 {
		return ids, nil
	}

	err := d.Model(ctx).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Order("post_id DESC").
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("dao.LikeDAO.LikedPostIDs: %w", err)
	}
	return ids, nil
}

// CountByPostIDs 批量统计点赞数，未被点赞的动态计为 0
func (d *LikeDAO) CountByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}
	for _, id := range postIDs {
		counts[id] = 0
	}

	var rows []models.LikeCount
	err := d.Model(ctx).
		Select("post_id, COUNT(*) AS cnt").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("dao.LikeDAO.CountByPostIDs: %w", err)
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}
