package dao

import (
	"context"
	"fmt"

	"network/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// PostFilter 动态列表过滤条件，字段均为空时查询全部
type PostFilter struct {
	AuthorID   int64 // 指定作者
	FollowerID int64 // 该用户关注的人
}

func (d *PostDAO) scope(ctx context.Context, filter PostFilter) *gorm.DB {
	tx := d.Model(ctx)
	if filter.AuthorID != 0 {
		tx = tx.Where("posts.user_id = ?", filter.AuthorID)
	}
	if filter.FollowerID != 0 {
		followees := d.Db.WithContext(ctx).
			Model(&models.Follow{}).
			Select("followee_id").
			Where("follower_id = ?", filter.FollowerID)
		tx = tx.Where("posts.user_id IN (?)", followees)
	}
	return tx
}

// Count 满足条件的动态总数
func (d *PostDAO) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var total int64
	if err := d.scope(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("dao.PostDAO.Count: %w", err)
	}
	return total, nil
}

// List 按 id 倒序分页查询，附带作者信息
func (d *PostDAO) List(ctx context.Context, filter PostFilter, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.scope(ctx, filter).
		Preload("Author").
		Order("posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("dao.PostDAO.List: %w", err)
	}
	return posts, nil
}

// UpdateContent 修改正文，作者不可变
func (d *PostDAO) UpdateContent(ctx context.Context, postID int64, content string) error {
	if _, err := d.UpdateById(ctx, postID, map[string]any{"content": content}); err != nil {
		return fmt.Errorf("dao.PostDAO.UpdateContent: %w", err)
	}
	return nil
}
