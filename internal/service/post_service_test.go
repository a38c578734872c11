package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
	"github.com/d60-Lab/bingeboard/pkg/database"
)

func newPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewPostService(
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		repository.NewMediaRepository(db),
	), db
}

func TestCreateStripsHTML(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()

	u := model.User{FName: "A", LName: "B", UName: "a", Email: "a@example.com", PWord: "x"}
	require.NoError(t, db.Create(&u).Error)
	m := model.TVMovie{Title: "Inception"}
	require.NoError(t, db.Create(&m).Error)

	id, err := svc.Create(ctx, u.UserID, m.MediaID,
		"<b>Review</b>", `Great <script>alert("xss")</script> movie`, false, nil)
	require.NoError(t, err)

	var p model.Post
	require.NoError(t, db.Where(`"PostID" = ?`, id).First(&p).Error)
	assert.Equal(t, "Review", p.Title)
	assert.NotContains(t, p.Content, "<script>")
	assert.Contains(t, p.Content, "movie")
}

func TestCreateRejectsUnknownMedia(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()

	u := model.User{FName: "A", LName: "B", UName: "a", Email: "a@example.com", PWord: "x"}
	require.NoError(t, db.Create(&u).Error)

	_, err := svc.Create(ctx, u.UserID, 999, "t", "c", false, nil)
	assert.ErrorIs(t, err, ErrUnknownMedia)
}

func TestFollowSelfRejected(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	svc := NewRelationshipService(
		repository.NewFollowRepository(db),
		repository.NewUserRepository(db),
	)

	_, err = svc.Follow(context.Background(), 7, 7)
	assert.ErrorIs(t, err, ErrFollowSelf)
}
