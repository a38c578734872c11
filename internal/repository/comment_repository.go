package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/bingeboard/internal/model"
)

type CommentRepository interface {
	// Add inserts the comment and its authorship row atomically.
	Add(ctx context.Context, userID, postID uint, content string) (uint, error)
	// Delete removes the comment only when userID is its author.
	Delete(ctx context.Context, userID, commentID uint) (bool, error)
	// ForPost lists a post's comments with commenter usernames, newest first.
	ForPost(ctx context.Context, postID uint) ([]model.CommentView, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Add(ctx context.Context, userID, postID uint, content string) (uint, error) {
	comment := &model.Comment{PostID: postID, Content: content, Date: time.Now()}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.Post{}).Where(`"PostID" = ?`, postID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Create(&model.Makes{UserID: userID, CommentID: comment.CommentID}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return comment.CommentID, nil
}

func (r *commentRepository) Delete(ctx context.Context, userID, commentID uint) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`
            DELETE FROM makes WHERE "UserID" = ? AND "CommentID" = ?
        `, userID, commentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// not the author, leave the comment alone
			return nil
		}
		if err := tx.Where(`"CommentID" = ?`, commentID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		removed = true
		return nil
	})
	return removed, err
}

func (r *commentRepository) ForPost(ctx context.Context, postID uint) ([]model.CommentView, error) {
	res := []model.CommentView{}
	err := r.db.WithContext(ctx).Raw(`
        SELECT c."CommentID" AS comment_id, c."PostID" AS post_id, c."Content" AS content, c."Date" AS date,
               u."UserID" AS author_id, u."UName" AS author_name
        FROM comment c
        JOIN makes mk ON mk."CommentID" = c."CommentID"
        JOIN "user" u ON u."UserID" = mk."UserID"
        WHERE c."PostID" = ?
        ORDER BY c."Date" DESC, c."CommentID" DESC
    `, postID).Scan(&res).Error
	return res, err
}
