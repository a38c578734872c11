package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/bingeboard/internal/model"
)

func TestWatchAddIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchRepository(db, model.TableWatchlist)
	ctx := context.Background()

	u := seedUser(t, db, "alice")

	added, err := repo.Add(ctx, u, "Inception")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(ctx, u, "Inception")
	require.NoError(t, err)
	assert.False(t, added, "second add reports nothing new")

	var cnt int64
	require.NoError(t, db.Table(model.TableWatchlist).Where(`"UserID" = ?`, u).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt, "exactly one pair row")

	var media int64
	require.NoError(t, db.Model(&model.TVMovie{}).Where(`"Title" = ?`, "Inception").Count(&media).Error)
	assert.EqualValues(t, 1, media, "exactly one media row")
}

func TestWatchAddCreatesMediaOnFirstSight(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchRepository(db, model.TableWatched)
	ctx := context.Background()

	u := seedUser(t, db, "bob")

	_, err := repo.Add(ctx, u, "  Severance ")
	require.NoError(t, err)

	var m model.TVMovie
	require.NoError(t, db.Where(`"Title" = ?`, "Severance").First(&m).Error)

	titles, err := repo.Titles(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, []string{"Severance"}, titles)
}

func TestWatchRemoveUnknownTitleIsNoOp(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchRepository(db, model.TableWatched)
	ctx := context.Background()

	u := seedUser(t, db, "carol")

	removed, err := repo.Remove(ctx, u, "TitleNotYetAdded")
	require.NoError(t, err)
	assert.False(t, removed)

	var cnt int64
	require.NoError(t, db.Model(&model.TVMovie{}).Count(&cnt).Error)
	assert.Zero(t, cnt, "remove must not create a media row")
}

func TestWatchRemove(t *testing.T) {
	db := newTestDB(t)
	repo := NewWatchRepository(db, model.TableWatching)
	ctx := context.Background()

	u := seedUser(t, db, "dave")

	_, err := repo.Add(ctx, u, "Andor")
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, u, "Andor")
	require.NoError(t, err)
	assert.True(t, removed)

	titles, err := repo.Titles(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, titles)

	// the media row itself stays in the catalog
	var cnt int64
	require.NoError(t, db.Model(&model.TVMovie{}).Where(`"Title" = ?`, "Andor").Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestWatchRelationsAreIndependent(t *testing.T) {
	db := newTestDB(t)
	watched := NewWatchRepository(db, model.TableWatched)
	watchlist := NewWatchRepository(db, model.TableWatchlist)
	ctx := context.Background()

	u := seedUser(t, db, "erin")

	_, err := watched.Add(ctx, u, "Breaking Bad")
	require.NoError(t, err)

	titles, err := watchlist.Titles(ctx, u)
	require.NoError(t, err)
	assert.Empty(t, titles, "adding to watched must not leak into watchlist")
}
