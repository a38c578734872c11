package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/bingeboard/internal/model"
)

// WatchRepository manages one of the three user<->media membership sets.
// The watched / watching / watchlist tables share a shape, so one
// implementation takes the relation name as configuration.
type WatchRepository interface {
	// Add resolves title to a media row (creating it on first sight)
	// and inserts the membership pair idempotently. Reports whether a
	// new pair was inserted.
	Add(ctx context.Context, userID uint, title string) (bool, error)
	// Remove deletes the pair if present. An unknown title is a no-op
	// and must not create a media row.
	Remove(ctx context.Context, userID uint, title string) (bool, error)
	Titles(ctx context.Context, userID uint) ([]string, error)
	Media(ctx context.Context, userID uint) ([]model.TVMovie, error)
}

type watchRepository struct {
	db    *gorm.DB
	table string
}

func NewWatchRepository(db *gorm.DB, table string) WatchRepository {
	switch table {
	case model.TableWatched, model.TableWatching, model.TableWatchlist:
	default:
		panic(fmt.Sprintf("unknown watch relation %q", table))
	}
	return &watchRepository{db: db, table: table}
}

func (r *watchRepository) Add(ctx context.Context, userID uint, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, errors.New("empty title")
	}
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		media, err := findOrCreateMedia(tx, title)
		if err != nil {
			return err
		}
		res := tx.Table(r.table).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(map[string]interface{}{"UserID": userID, "MediaID": media.MediaID})
		if res.Error != nil {
			return res.Error
		}
		added = res.RowsAffected > 0
		return nil
	})
	return added, err
}

func (r *watchRepository) Remove(ctx context.Context, userID uint, title string) (bool, error) {
	title = strings.TrimSpace(title)
	var media model.TVMovie
	err := r.db.WithContext(ctx).Where(`"Title" = ?`, title).First(&media).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	res := r.db.WithContext(ctx).Exec(
		fmt.Sprintf(`DELETE FROM %s WHERE "UserID" = ? AND "MediaID" = ?`, r.table),
		userID, media.MediaID)
	return res.RowsAffected > 0, res.Error
}

func (r *watchRepository) Titles(ctx context.Context, userID uint) ([]string, error) {
	titles := []string{}
	err := r.db.WithContext(ctx).Raw(fmt.Sprintf(`
        SELECT m."Title" FROM tvmovie m
        JOIN %s w ON w."MediaID" = m."MediaID"
        WHERE w."UserID" = ?
    `, r.table), userID).Scan(&titles).Error
	return titles, err
}

func (r *watchRepository) Media(ctx context.Context, userID uint) ([]model.TVMovie, error) {
	res := []model.TVMovie{}
	err := r.db.WithContext(ctx).Raw(fmt.Sprintf(`
        SELECT m."MediaID", m."Title", m."Genre", m."Year", m."Type" FROM tvmovie m
        JOIN %s w ON w."MediaID" = m."MediaID"
        WHERE w."UserID" = ?
    `, r.table), userID).Scan(&res).Error
	return res, err
}

// findOrCreateMedia looks a title up by exact match (surrounding whitespace
// already trimmed) and creates a bare media row on first sight. Title is the
// natural key here, matching the original data model.
func findOrCreateMedia(tx *gorm.DB, title string) (*model.TVMovie, error) {
	var media model.TVMovie
	err := tx.Where(`"Title" = ?`, title).First(&media).Error
	if err == nil {
		return &media, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	media = model.TVMovie{Title: title}
	if err := tx.Create(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}
