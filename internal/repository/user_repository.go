package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/bingeboard/internal/model"
)

// ErrUserExists 用户名或邮箱已被占用
var ErrUserExists = errors.New("username or email already taken")

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	All(ctx context.Context) ([]model.UserSummary, error)
	// Others returns every user except self and users already followed
	// by currentID (the discover page).
	Others(ctx context.Context, currentID uint) ([]model.UserSummary, error)
	// Search matches term against username and name fields, excluding
	// self, each row annotated with the caller's follow state.
	Search(ctx context.Context, term string, currentID uint) ([]model.UserSummary, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.User{}).
			Where(`"UName" = ? OR "Email" = ?`, u.UName, u.Email).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrUserExists
		}
		return tx.Create(u).Error
	})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where(`"Email" = ?`, email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where(`"UserID" = ?`, id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) All(ctx context.Context) ([]model.UserSummary, error) {
	res := []model.UserSummary{}
	err := r.db.WithContext(ctx).Raw(`
        SELECT u."UserID" AS user_id, u."UName" AS uname, u."FName" AS fname, u."LName" AS lname
        FROM "user" u
        ORDER BY u."UName"
    `).Scan(&res).Error
	return res, err
}

func (r *userRepository) Others(ctx context.Context, currentID uint) ([]model.UserSummary, error) {
	res := []model.UserSummary{}
	err := r.db.WithContext(ctx).Raw(`
        SELECT u."UserID" AS user_id, u."UName" AS uname, u."FName" AS fname, u."LName" AS lname
        FROM "user" u
        WHERE u."UserID" <> ?
          AND u."UserID" NOT IN (SELECT f."UserID" FROM follows f WHERE f."FollowerID" = ?)
        ORDER BY u."UName"
    `, currentID, currentID).Scan(&res).Error
	return res, err
}

func (r *userRepository) Search(ctx context.Context, term string, currentID uint) ([]model.UserSummary, error) {
	like := "%" + term + "%"
	res := []model.UserSummary{}
	err := r.db.WithContext(ctx).Raw(`
        SELECT u."UserID" AS user_id, u."UName" AS uname, u."FName" AS fname, u."LName" AS lname,
               EXISTS(SELECT 1 FROM follows f WHERE f."UserID" = u."UserID" AND f."FollowerID" = ?) AS is_following
        FROM "user" u
        WHERE u."UserID" <> ?
          AND (u."UName" LIKE ? OR u."FName" LIKE ? OR u."LName" LIKE ?)
        ORDER BY u."UName"
    `, currentID, currentID, like, like, like).Scan(&res).Error
	return res, err
}
