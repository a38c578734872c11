package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/bingeboard/internal/model"
)

func TestCreateUserRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &model.User{FName: "A", LName: "B", UName: "alice", Email: "alice@example.com", PWord: "x"}
	require.NoError(t, repo.Create(ctx, u))
	require.NotZero(t, u.UserID)

	dupName := &model.User{FName: "A", LName: "B", UName: "alice", Email: "other@example.com", PWord: "x"}
	assert.ErrorIs(t, repo.Create(ctx, dupName), ErrUserExists)

	dupMail := &model.User{FName: "A", LName: "B", UName: "alice2", Email: "alice@example.com", PWord: "x"}
	assert.ErrorIs(t, repo.Create(ctx, dupMail), ErrUserExists)
}

func TestFindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, "alice")

	u, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.UName)

	u, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, u, "unknown email is none, not an error")
}

func TestOthersExcludesSelfAndFollowed(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	me := seedUser(t, db, "me")
	friend := seedUser(t, db, "friend")
	stranger := seedUser(t, db, "stranger")

	_, err := follows.Follow(ctx, me, friend)
	require.NoError(t, err)

	others, err := users.Others(ctx, me)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, stranger, others[0].UserID)
}

func TestSearchAnnotatesFollowState(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	me := seedUser(t, db, "me")
	ann := seedUser(t, db, "ann")
	seedUser(t, db, "anna")
	seedUser(t, db, "bob")

	_, err := follows.Follow(ctx, me, ann)
	require.NoError(t, err)

	res, err := users.Search(ctx, "ann", me)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "ann", res[0].UName)
	assert.True(t, res[0].IsFollowing)
	assert.Equal(t, "anna", res[1].UName)
	assert.False(t, res[1].IsFollowing)
}

func TestSearchExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	me := seedUser(t, db, "searcher")

	res, err := users.Search(ctx, "search", me)
	require.NoError(t, err)
	assert.Empty(t, res)
}
