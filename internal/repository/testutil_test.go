package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/pkg/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	u := model.User{
		FName: name,
		LName: "Test",
		UName: name,
		Email: fmt.Sprintf("%s@example.com", name),
		PWord: "x",
	}
	require.NoError(t, db.Create(&u).Error)
	return u.UserID
}

func seedMedia(t *testing.T, db *gorm.DB, title string) uint {
	t.Helper()
	m := model.TVMovie{Title: title, Genre: "Drama", Year: "2020", Type: model.MediaTypeTV}
	require.NoError(t, db.Create(&m).Error)
	return m.MediaID
}

func seedPost(t *testing.T, db *gorm.DB, authorID, mediaID uint, title, content string) uint {
	t.Helper()
	id, err := NewPostRepository(db).Create(context.Background(), authorID, mediaID, title, content, false, nil)
	require.NoError(t, err)
	return id
}
