package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/bingeboard/internal/model"
)

type FollowRepository interface {
	// Follow reports whether a new edge was created; a duplicate follow
	// is (false, nil), not an error.
	Follow(ctx context.Context, followerID, targetID uint) (bool, error)
	// Unfollow reports whether an edge was actually removed.
	Unfollow(ctx context.Context, followerID, targetID uint) (bool, error)
	IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error)
	Followers(ctx context.Context, userID uint) ([]model.UserSummary, error)
	Following(ctx context.Context, userID uint) ([]model.UserSummary, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Follow(ctx context.Context, followerID, targetID uint) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.Follow{}).
			Where(`"UserID" = ? AND "FollowerID" = ?`, targetID, followerID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return nil
		}
		// 复合主键兜底：并发输家落到 DoNothing，RowsAffected = 0
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.Follow{UserID: targetID, FollowerID: followerID})
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected > 0
		return nil
	})
	return created, err
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, targetID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where(`"UserID" = ? AND "FollowerID" = ?`, targetID, followerID).
		Delete(&model.Follow{})
	return res.RowsAffected > 0, res.Error
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where(`"UserID" = ? AND "FollowerID" = ?`, targetID, followerID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) Followers(ctx context.Context, userID uint) ([]model.UserSummary, error) {
	res := []model.UserSummary{}
	err := r.db.WithContext(ctx).Raw(`
        SELECT u."UserID" AS user_id, u."UName" AS uname, u."FName" AS fname, u."LName" AS lname
        FROM "user" u
        JOIN follows f ON f."FollowerID" = u."UserID"
        WHERE f."UserID" = ?
        ORDER BY u."UName"
    `, userID).Scan(&res).Error
	return res, err
}

func (r *followRepository) Following(ctx context.Context, userID uint) ([]model.UserSummary, error) {
	res := []model.UserSummary{}
	err := r.db.WithContext(ctx).Raw(`
        SELECT u."UserID" AS user_id, u."UName" AS uname, u."FName" AS fname, u."LName" AS lname
        FROM "user" u
        JOIN follows f ON f."UserID" = u."UserID"
        WHERE f."FollowerID" = ?
        ORDER BY u."UName"
    `, userID).Scan(&res).Error
	return res, err
}
