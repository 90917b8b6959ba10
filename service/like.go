package service

import (
	"context"

	"network/dao"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID int64, postID int64) (bool, error)
	Unlike(ctx context.Context, userID int64, postID int64) error
}

type LikeService struct {
	LikeDAO *dao.LikeDAO
	PostDAO *dao.PostDAO
}

// Like 点赞，返回是否新增；已点赞时不重复创建
func (s *LikeService) Like(ctx context.Context, userID int64, postID int64) (bool, error) {
	if err := s.mustExist(ctx, postID); err != nil {
		return false, err
	}
	return s.LikeDAO.Create(ctx, userID, postID)
}

// Unlike 取消点赞，没有点赞记录时同样视为成功
func (s *LikeService) Unlike(ctx context.Context, userID int64, postID int64) error {
	if err := s.mustExist(ctx, postID); err != nil {
		return err
	}
	return s.LikeDAO.Remove(ctx, userID, postID)
}

func (s *LikeService) mustExist(ctx context.Context, postID int64) error {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrPostNotFound
	}
	return nil
}
