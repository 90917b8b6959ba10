package service

import (
	"context"
	"errors"
	"strings"

	"network/dao"
	"network/models"

	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, userID int64, content string) (*models.Post, error)
	Edit(ctx context.Context, userID int64, postID int64, content string) (string, error)
}

type PostService struct {
	PostDAO *dao.PostDAO
}

// Create 发布动态，内容去除首尾空白后为空则不写入
func (s *PostService) Create(ctx context.Context, userID int64, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	post := &models.Post{
		UserID:  userID,
		Content: content,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Edit 修改动态内容，仅作者本人可操作，返回新内容
func (s *PostService) Edit(ctx context.Context, userID int64, postID int64, content string) (string, error) {
	post, err := s.PostDAO.FindById(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrPostNotFound
	}
	if err != nil {
		return "", err
	}

	if post.UserID != userID {
		return "", ErrForbidden
	}

	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	if err := s.PostDAO.UpdateContent(ctx, postID, content); err != nil {
		return "", err
	}
	return content, nil
}
