package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/bingeboard/internal/model"
)

func TestFollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	created, err := repo.Follow(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Follow(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, created, "second follow must report no new edge")

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).
		Where(`"UserID" = ? AND "FollowerID" = ?`, b, a).
		Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt, "edge count for the pair stays 1")
}

func TestUnfollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	removed, err := repo.Unfollow(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, removed, "unfollow without a prior follow is a no-op")

	_, err = repo.Follow(ctx, a, b)
	require.NoError(t, err)

	removed, err = repo.Unfollow(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, removed)

	following, err := repo.IsFollowing(ctx, a, b)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowEdgeIsDirected(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	_, err := repo.Follow(ctx, a, b)
	require.NoError(t, err)

	got, err := repo.IsFollowing(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = repo.IsFollowing(ctx, b, a)
	require.NoError(t, err)
	assert.False(t, got, "reverse direction is a separate edge")
}

func TestFollowersAndFollowingOrderedByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	target := seedUser(t, db, "target")
	zoe := seedUser(t, db, "zoe")
	amy := seedUser(t, db, "amy")

	for _, follower := range []uint{zoe, amy} {
		_, err := repo.Follow(ctx, follower, target)
		require.NoError(t, err)
	}

	followers, err := repo.Followers(ctx, target)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "amy", followers[0].UName)
	assert.Equal(t, "zoe", followers[1].UName)

	following, err := repo.Following(ctx, amy)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, target, following[0].UserID)
}
