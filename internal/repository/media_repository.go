package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/bingeboard/internal/model"
)

type MediaRepository interface {
	// Create registers a title with its metadata; when the title already
	// exists the existing row wins and only blank fields are filled in.
	Create(ctx context.Context, title, genre, year, mediaType string) (*model.TVMovie, error)
	ByID(ctx context.Context, id uint) (*model.TVMovie, error)
	ByTitle(ctx context.Context, title string) (*model.TVMovie, error)
	All(ctx context.Context) ([]model.TVMovie, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository { return &mediaRepository{db: db} }

func (r *mediaRepository) Create(ctx context.Context, title, genre, year, mediaType string) (*model.TVMovie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("empty title")
	}
	var media *model.TVMovie
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findOrCreateMedia(tx, title)
		if err != nil {
			return err
		}
		updates := map[string]interface{}{}
		if m.Genre == "" && genre != "" {
			updates["Genre"] = genre
			m.Genre = genre
		}
		if m.Year == "" && year != "" {
			updates["Year"] = year
			m.Year = year
		}
		if m.Type == "" && mediaType != "" {
			updates["Type"] = mediaType
			m.Type = mediaType
		}
		if len(updates) > 0 {
			if err := tx.Model(&model.TVMovie{}).
				Where(`"MediaID" = ?`, m.MediaID).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		media = m
		return nil
	})
	return media, err
}

func (r *mediaRepository) ByID(ctx context.Context, id uint) (*model.TVMovie, error) {
	var m model.TVMovie
	err := r.db.WithContext(ctx).Where(`"MediaID" = ?`, id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepository) ByTitle(ctx context.Context, title string) (*model.TVMovie, error) {
	var m model.TVMovie
	err := r.db.WithContext(ctx).Where(`"Title" = ?`, strings.TrimSpace(title)).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mediaRepository) All(ctx context.Context) ([]model.TVMovie, error) {
	res := []model.TVMovie{}
	err := r.db.WithContext(ctx).Order(`"Title"`).Find(&res).Error
	return res, err
}
