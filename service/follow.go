package service

import (
	"context"
	"errors"

	"network/dao"
	"network/models"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID int64, username string) (*models.User, error)
	Unfollow(ctx context.Context, followerID int64, username string) (*models.User, error)
}

type FollowService struct {
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
}

// Follow 关注用户，已关注时直接返回成功
func (s *FollowService) Follow(ctx context.Context, followerID int64, username string) (*models.User, error) {
	followee, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if _, err := s.FollowDAO.Create(ctx, followerID, followee.ID); err != nil {
		return nil, err
	}
	return followee, nil
}

// Unfollow 取消关注，未关注时返回 ErrFollowNotFound
func (s *FollowService) Unfollow(ctx context.Context, followerID int64, username string) (*models.User, error) {
	followee, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	removed, err := s.FollowDAO.Remove(ctx, followerID, followee.ID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrFollowNotFound
	}
	return followee, nil
}

func (s *FollowService) findUser(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}
