package model

import "time"

// Comment 评论；作者关系只存在于 makes 表
type Comment struct {
	CommentID uint      `gorm:"column:CommentID;primaryKey;autoIncrement" json:"comment_id"`
	PostID    uint      `gorm:"column:PostID;index:idx_comment_post;not null" json:"post_id"`
	Content   string    `gorm:"column:Content;type:text" json:"content"`
	Date      time.Time `gorm:"column:Date" json:"date"`
}

func (Comment) TableName() string { return "comment" }
