package service

import (
	"context"
	"fmt"
	"testing"

	"network/config"
	"network/dao"
	"network/dao/cache"
	"network/models"
	"network/pkg/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	conf   *config.Config
	mr     *miniredis.Miniredis
	users  *UserService
	tokens *TokenService
	posts  *PostService
	likes  *LikeService
	follow *FollowService
	feed   *FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(&config.Database{Driver: config.DriverSQLite, Database: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	conf := &config.Config{Jwt: &config.Jwt{Secret: "test-secret", ExpiresTime: 3600}}

	usersDAO := dao.NewUsers(db)
	postDAO := dao.NewPostDAO(db)
	likeDAO := dao.NewLikeDAO(db)
	followDAO := dao.NewFollowDAO(db)

	return &testEnv{
		db:     db,
		conf:   conf,
		mr:     mr,
		users:  &UserService{UsersRepo: usersDAO},
		tokens: &TokenService{Config: conf, TokenStorage: cache.NewTokenStorage(rdb)},
		posts:  &PostService{PostDAO: postDAO},
		likes:  &LikeService{LikeDAO: likeDAO, PostDAO: postDAO},
		follow: &FollowService{FollowDAO: followDAO, UserDAO: usersDAO},
		feed:   &FeedService{PostDAO: postDAO, LikeDAO: likeDAO, FollowDAO: followDAO, UserDAO: usersDAO},
	}
}

func (e *testEnv) register(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.users.Register(context.Background(), &UserRegisterOpt{
		Username:     username,
		Email:        username + "@example.com",
		Password:     "password",
		Confirmation: "password",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) post(t *testing.T, author *models.User, n int) []*models.Post {
	t.Helper()
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post, err := e.posts.Create(context.Background(), author.ID, fmt.Sprintf("post %d", i))
		require.NoError(t, err)
		posts = append(posts, post)
	}
	return posts
}

func (e *testEnv) count(t *testing.T, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	tx := e.db.Model(model)
	if where != "" {
		tx = tx.Where(where, args...)
	}
	require.NoError(t, tx.Count(&n).Error)
	return n
}
