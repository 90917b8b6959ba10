package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"network/config"
	"network/dao"
	"network/dao/cache"
	"network/handler"
	"network/models"
	"network/pkg/database"
	"network/pkg/server"
	"network/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
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

	conf := &config.Config{
		App: &config.App{Env: "test", Debug: true},
		Jwt: &config.Jwt{Secret: "test-secret", ExpiresTime: 3600},
	}

	users := dao.NewUsers(db)
	postDAO := dao.NewPostDAO(db)
	likeDAO := dao.NewLikeDAO(db)
	followDAO := dao.NewFollowDAO(db)
	tokens := &service.TokenService{Config: conf, TokenStorage: cache.NewTokenStorage(rdb)}

	engine := server.NewGinEngine(&server.Handlers{
		Auth: &handler.Auth{
			Config:       conf,
			UserService:  &service.UserService{UsersRepo: users},
			TokenService: tokens,
		},
		Feed: &handler.Feed{
			FeedService:  &service.FeedService{PostDAO: postDAO, LikeDAO: likeDAO, FollowDAO: followDAO, UserDAO: users},
			TokenService: tokens,
		},
		Post: &handler.Post{
			PostService:  &service.PostService{PostDAO: postDAO},
			TokenService: tokens,
		},
		Like: &handler.Like{
			LikeService:  &service.LikeService{LikeDAO: likeDAO, PostDAO: postDAO},
			TokenService: tokens,
		},
		Follow: &handler.Follow{
			FollowService: &service.FollowService{FollowDAO: followDAO, UserDAO: users},
			TokenService:  tokens,
		},
	})

	return &testApp{t: t, db: db, engine: engine}
}

func (a *testApp) do(method, target, token string, body *strings.Reader, contentType string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(target, token string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, target, token, nil, "")
}

func (a *testApp) postForm(target, token string, form url.Values) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, target, token, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
}

func (a *testApp) postJSON(target, token string, payload any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	require.NoError(a.t, err)
	return a.do(http.MethodPost, target, token, strings.NewReader(string(raw)), "application/json")
}

// register 注册并返回 token 和用户 ID
func (a *testApp) register(username string) (string, int64) {
	a.t.Helper()
	w := a.postForm("/register", "", url.Values{
		"username":     {username},
		"email":        {username + "@example.com"},
		"password":     {"password"},
		"confirmation": {"password"},
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				ID int64 `json:"id,string"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(a.t, resp.Data.Token)
	return resp.Data.Token, resp.Data.User.ID
}

func (a *testApp) createPosts(token string, n int) {
	a.t.Helper()
	for i := 0; i < n; i++ {
		w := a.postForm("/posts", token, url.Values{"content": {fmt.Sprintf("post %d", i)}})
		require.Equal(a.t, http.StatusSeeOther, w.Code)
	}
}

func (a *testApp) latestPost() *models.Post {
	a.t.Helper()
	var post models.Post
	require.NoError(a.t, a.db.Order("id DESC").First(&post).Error)
	return &post
}

func (a *testApp) count(model any) int64 {
	a.t.Helper()
	var n int64
	require.NoError(a.t, a.db.Model(model).Count(&n).Error)
	return n
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
