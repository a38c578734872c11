package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/bingeboard/internal/model"
)

func TestAddCommentWritesAuthorship(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	m := seedMedia(t, db, "Chernobyl")
	postID := seedPost(t, db, author, m, "Ep5", "wow")

	id, err := repo.Add(ctx, commenter, postID, "indeed")
	require.NoError(t, err)
	require.NotZero(t, id)

	var cnt int64
	require.NoError(t, db.Model(&model.Makes{}).
		Where(`"UserID" = ? AND "CommentID" = ?`, commenter, id).
		Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestAddCommentUnknownPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	u := seedUser(t, db, "u")

	id, err := repo.Add(context.Background(), u, 999, "into the void")
	require.NoError(t, err)
	assert.Zero(t, id, "commenting on a missing post is a no-op")

	var cnt int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&cnt).Error)
	assert.Zero(t, cnt)
}

func TestDeleteCommentOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	other := seedUser(t, db, "other")
	m := seedMedia(t, db, "Ozark")
	postID := seedPost(t, db, author, m, "S4", "dark")

	id, err := repo.Add(ctx, commenter, postID, "so dark")
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, other, id)
	require.NoError(t, err)
	assert.False(t, removed)

	list, err := repo.ForPost(ctx, postID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	removed, err = repo.Delete(ctx, commenter, id)
	require.NoError(t, err)
	assert.True(t, removed)

	list, err = repo.ForPost(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestForPostNewestFirstWithUsernames(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	m := seedMedia(t, db, "Dark")
	postID := seedPost(t, db, author, m, "Timelines", "help")

	first, err := repo.Add(ctx, commenter, postID, "first")
	require.NoError(t, err)
	second, err := repo.Add(ctx, author, postID, "second")
	require.NoError(t, err)

	list, err := repo.ForPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// same-instant inserts fall back to id ordering, newest first
	assert.Equal(t, second, list[0].CommentID)
	assert.Equal(t, "author", list[0].AuthorName)
	assert.Equal(t, first, list[1].CommentID)
	assert.Equal(t, "commenter", list[1].AuthorName)
}
