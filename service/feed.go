package service

import (
	"context"
	"errors"

	"network/dao"
	"network/models"
	"network/pkg/paginator"

	"github.com/sourcegraph/conc/pool"
	"gorm.io/gorm"
)

// PageSize 动态列表固定每页条数
const PageSize = 10

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	Global(ctx context.Context, viewerID int64, page string) (*FeedPage, error)
	Following(ctx context.Context, viewerID int64, page string) (*FeedPage, error)
	Profile(ctx context.Context, viewerID int64, userID int64, page string) (*ProfilePage, error)
}

type FeedService struct {
	PostDAO   *dao.PostDAO
	LikeDAO   *dao.LikeDAO
	FollowDAO *dao.FollowDAO
	UserDAO   *dao.Users
}

type FeedItem struct {
	Post      *models.Post
	LikeCount int64
	Liked     bool
}

type FeedPage struct {
	Page         paginator.Page
	Items        []*FeedItem
	LikedPostIDs []int64 // 当前页中查看者点过赞的动态，未登录为空
}

type ProfilePage struct {
	User           *models.User
	FollowersCount int64
	FollowingCount int64
	IsFollowing    bool
	Feed           *FeedPage
}

// Global 全站动态
func (s *FeedService) Global(ctx context.Context, viewerID int64, page string) (*FeedPage, error) {
	return s.list(ctx, dao.PostFilter{}, viewerID, page)
}

// Following 关注的人发布的动态
func (s *FeedService) Following(ctx context.Context, viewerID int64, page string) (*FeedPage, error) {
	return s.list(ctx, dao.PostFilter{FollowerID: viewerID}, viewerID, page)
}

// Profile 个人主页：动态列表 + 关注信息
func (s *FeedService) Profile(ctx context.Context, viewerID int64, userID int64, page string) (*ProfilePage, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	result := &ProfilePage{User: user}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		count, err := s.FollowDAO.GetFollowerCount(ctx, userID)
		result.FollowersCount = count
		return err
	})
	p.Go(func(ctx context.Context) error {
		count, err := s.FollowDAO.GetFollowingCount(ctx, userID)
		result.FollowingCount = count
		return err
	})
	if viewerID != 0 {
		p.Go(func(ctx context.Context) error {
			following, err := s.FollowDAO.IsFollowing(ctx, viewerID, userID)
			result.IsFollowing = following
			return err
		})
	}
	p.Go(func(ctx context.Context) error {
		feed, err := s.list(ctx, dao.PostFilter{AuthorID: userID}, viewerID, page)
		result.Feed = feed
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *FeedService) list(ctx context.Context, filter dao.PostFilter, viewerID int64, page string) (*FeedPage, error) {
	total, err := s.PostDAO.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	pg := paginator.New(total, PageSize, page)
	posts, err := s.PostDAO.List(ctx, filter, pg.Limit(), pg.Offset())
	if err != nil {
		return nil, err
	}

	feed := &FeedPage{
		Page:         pg,
		Items:        make([]*FeedItem, 0, len(posts)),
		LikedPostIDs: []int64{},
	}
	if len(posts) == 0 {
		return feed, nil
	}

	ids := make([]int64, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}

	var counts map[int64]int64
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		counts, err = s.LikeDAO.CountByPostIDs(ctx, ids)
		return err
	})
	if viewerID != 0 {
		p.Go(func(ctx context.Context) error {
			liked, err := s.LikeDAO.LikedPostIDs(ctx, viewerID, ids)
			feed.LikedPostIDs = liked
			return err
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	liked := make(map[int64]struct{}, len(feed.LikedPostIDs))
	for _, id := range feed.LikedPostIDs {
		liked[id] = struct{}{}
	}
	for _, post := range posts {
		_, ok := liked[post.ID]
		feed.Items = append(feed.Items, &FeedItem{
			Post:      post,
			LikeCount: counts[post.ID],
			Liked:     ok,
		})
	}
	return feed, nil
}
