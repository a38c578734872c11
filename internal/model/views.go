package model

import "time"

// Read-side projections scanned out of join queries.

// FeedItem is one row of a user's personalized feed.
type FeedItem struct {
	PostID     uint      `gorm:"column:post_id" json:"post_id"`
	Title      string    `gorm:"column:title" json:"title"`
	Date       time.Time `gorm:"column:date" json:"date"`
	Content    string    `gorm:"column:content" json:"content"`
	Spoiler    bool      `gorm:"column:spoiler" json:"spoiler"`
	Rating     *int      `gorm:"column:rating" json:"rating,omitempty"`
	AuthorID   uint      `gorm:"column:author_id" json:"author_id"`
	AuthorName string    `gorm:"column:author_name" json:"author_name"`
	MediaTitle string    `gorm:"column:media_title" json:"media_title"`
}

// UserSummary is the public slice of a user row, optionally annotated
// with the caller's follow state (search / discover pages).
type UserSummary struct {
	UserID      uint   `gorm:"column:user_id" json:"user_id"`
	UName       string `gorm:"column:uname" json:"username"`
	FName       string `gorm:"column:fname" json:"first_name"`
	LName       string `gorm:"column:lname" json:"last_name"`
	IsFollowing bool   `gorm:"column:is_following" json:"is_following"`
}

// CommentView is a comment joined with its author.
type CommentView struct {
	CommentID  uint      `gorm:"column:comment_id" json:"comment_id"`
	PostID     uint      `gorm:"column:post_id" json:"post_id"`
	Content    string    `gorm:"column:content" json:"content"`
	Date       time.Time `gorm:"column:date" json:"date"`
	AuthorID   uint      `gorm:"column:author_id" json:"author_id"`
	AuthorName string    `gorm:"column:author_name" json:"author_name"`
}
