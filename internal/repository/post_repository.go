package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/bingeboard/internal/model"
)

type PostRepository interface {
	// Create inserts the post row and its authorship row atomically.
	Create(ctx context.Context, userID, mediaID uint, title, content string, spoiler bool, rating *int) (uint, error)
	// Edit updates content only when userID owns postID; a non-owner
	// call is (false, nil).
	Edit(ctx context.Context, userID, postID uint, content string) (bool, error)
	// Delete removes the post's comments, their authorship rows, the
	// post's authorship row and the post itself, owner-guarded.
	Delete(ctx context.Context, userID, postID uint) (bool, error)
	Get(ctx context.Context, postID uint) (*model.FeedItem, error)
	// Feed is the time-ordered union of the user's own posts and the
	// posts of everyone the user follows, computed as one query.
	Feed(ctx context.Context, userID uint) ([]model.FeedItem, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, userID, mediaID uint, title, content string, spoiler bool, rating *int) (uint, error) {
	post := &model.Post{
		MediaID: mediaID,
		Title:   title,
		Date:    time.Now(),
		Content: content,
		Spoiler: spoiler,
		Rating:  rating,
	}
	// 帖子和归属关系要么同时落地要么都不落地
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Create(&model.Creates{UserID: userID, PostID: post.PostID}).Error
	})
	if err != nil {
		return 0, err
	}
	return post.PostID, nil
}

func (r *postRepository) Edit(ctx context.Context, userID, postID uint, content string) (bool, error) {
	// Ownership and mutation in a single statement: the correlated
	// subquery against creates keeps the check race-free.
	res := r.db.WithContext(ctx).Exec(`
        UPDATE post SET "Content" = ?
        WHERE "PostID" = ?
          AND "PostID" IN (SELECT c."PostID" FROM creates c WHERE c."UserID" = ?)
    `, content, postID, userID)
	return res.RowsAffected > 0, res.Error
}

func (r *postRepository) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&model.Creates{}).
			Where(`"UserID" = ? AND "PostID" = ?`, userID, postID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned == 0 {
			// not the author: nothing else in this tx may run
			return nil
		}
		// dependency order: makes -> comment -> creates -> post
		if err := tx.Exec(`
            DELETE FROM makes
            WHERE "CommentID" IN (SELECT c."CommentID" FROM comment c WHERE c."PostID" = ?)
        `, postID).Error; err != nil {
			return err
		}
		if err := tx.Where(`"PostID" = ?`, postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where(`"PostID" = ?`, postID).Delete(&model.Creates{}).Error; err != nil {
			return err
		}
		if err := tx.Where(`"PostID" = ?`, postID).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *postRepository) Get(ctx context.Context, postID uint) (*model.FeedItem, error) {
	var rows []model.FeedItem
	err := r.db.WithContext(ctx).Raw(`
        SELECT p."PostID" AS post_id, p."Title" AS title, p."Date" AS date, p."Content" AS content,
               p."Spoiler" AS spoiler, p."Rating" AS rating,
               u."UserID" AS author_id, u."UName" AS author_name, m."Title" AS media_title
        FROM post p
        JOIN creates c ON c."PostID" = p."PostID"
        JOIN "user" u ON u."UserID" = c."UserID"
        JOIN tvmovie m ON m."MediaID" = p."MediaID"
        WHERE p."PostID" = ?
    `, postID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *postRepository) Feed(ctx context.Context, userID uint) ([]model.FeedItem, error) {
	res := []model.FeedItem{}
	err := r.db.WithContext(ctx).Raw(`
        SELECT DISTINCT p."PostID" AS post_id, p."Title" AS title, p."Date" AS date, p."Content" AS content,
               p."Spoiler" AS spoiler, p."Rating" AS rating,
               u."UserID" AS author_id, u."UName" AS author_name, m."Title" AS media_title
        FROM post p
        JOIN creates c ON c."PostID" = p."PostID"
        JOIN "user" u ON u."UserID" = c."UserID"
        JOIN tvmovie m ON m."MediaID" = p."MediaID"
        WHERE c."UserID" = ?
           OR c."UserID" IN (SELECT f."UserID" FROM follows f WHERE f."FollowerID" = ?)
        ORDER BY p."Date" DESC
    `, userID, userID).Scan(&res).Error
	return res, err
}
