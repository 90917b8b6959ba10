package dao

import (
	"context"
	"fmt"
	"testing"

	"network/config"
	"network/models"
	"network/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Database{Driver: config.DriverSQLite, Database: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, NewUsers(db).Create(context.Background(), user))
	return user
}

func createPosts(t *testing.T, db *gorm.DB, author *models.User, n int) []*models.Post {
	t.Helper()
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		post := &models.Post{UserID: author.ID, Content: fmt.Sprintf("%s #%d", author.Username, i)}
		require.NoError(t, NewPostDAO(db).Repo.Create(context.Background(), post))
		posts = append(posts, post)
	}
	return posts
}

func TestUsers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	users := NewUsers(db)

	alice := createUser(t, db, "alice")
	assert.NotZero(t, alice.ID)

	found, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)

	_, err = users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exist, err := users.IsUsernameExist(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exist)

	err = users.Create(ctx, &models.User{Username: "alice", Password: "y"})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPostDAO_List(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	postDAO := NewPostDAO(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	createPosts(t, db, alice, 3)
	bobPosts := createPosts(t, db, bob, 2)
	createPosts(t, db, carol, 4)

	total, err := postDAO.Count(ctx, PostFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 9, total)

	all, err := postDAO.List(ctx, PostFilter{}, 5, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i-1].ID, all[i].ID)
	}
	require.NotNil(t, all[0].Author)
	assert.Equal(t, "carol", all[0].Author.Username)

	byBob, err := postDAO.List(ctx, PostFilter{AuthorID: bob.ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, byBob, 2)
	assert.Equal(t, bobPosts[1].ID, byBob[0].ID)

	_, err = NewFollowDAO(db).Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = NewFollowDAO(db).Create(ctx, alice.ID, carol.ID)
	require.NoError(t, err)

	total, err = postDAO.Count(ctx, PostFilter{FollowerID: alice.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)

	following, err := postDAO.List(ctx, PostFilter{FollowerID: alice.ID}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, following, 6)
	for _, p := range following {
		assert.NotEqual(t, alice.ID, p.UserID)
	}

	total, err = postDAO.Count(ctx, PostFilter{FollowerID: bob.ID})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestPostDAO_UpdateContent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	postDAO := NewPostDAO(db)

	alice := createUser(t, db, "alice")
	post := createPosts(t, db, alice, 1)[0]

	require.NoError(t, postDAO.UpdateContent(ctx, post.ID, "edited"))

	found, err := postDAO.FindById(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.Content)
	assert.Equal(t, alice.ID, found.UserID)
}

func TestFollowDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	followDAO := NewFollowDAO(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	created, err := followDAO.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = followDAO.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var edges int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&edges).Error)
	assert.EqualValues(t, 1, edges)

	following, err := followDAO.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = followDAO.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	followers, err := followDAO.GetFollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, followers)

	followingCount, err := followDAO.GetFollowingCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, followingCount)

	removed, err := followDAO.Remove(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = followDAO.Remove(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestLikeDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	likeDAO := NewLikeDAO(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	posts := createPosts(t, db, alice, 3)

	created, err := likeDAO.Create(ctx, bob.ID, posts[0].ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = likeDAO.Create(ctx, bob.ID, posts[0].ID)
	require.NoError(t, err)
	assert.False(t, created)

	_, err = likeDAO.Create(ctx, alice.ID, posts[0].ID)
	require.NoError(t, err)
	_, err = likeDAO.Create(ctx, bob.ID, posts[2].ID)
	require.NoError(t, err)

	ids := []int64{posts[0].ID, posts[1].ID, posts[2].ID}
	counts, err := likeDAO.CountByPostIDs(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{posts[0].ID: 2, posts[1].ID: 0, posts[2].ID: 1}, counts)

	liked, err := likeDAO.LikedPostIDs(ctx, bob.ID, ids)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{posts[0].ID, posts[2].ID}, liked)

	require.NoError(t, likeDAO.Remove(ctx, bob.ID, posts[0].ID))
	require.NoError(t, likeDAO.Remove(ctx, bob.ID, posts[0].ID))

	isLiked, err := likeDAO.IsLiked(ctx, bob.ID, posts[0].ID)
	require.NoError(t, err)
	assert.False(t, isLiked)

	empty, err := likeDAO.LikedPostIDs(ctx, bob.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
