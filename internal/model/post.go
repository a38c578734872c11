package model

import "time"

// Post 内容主体；作者关系只存在于 creates 表
type Post struct {
	PostID  uint      `gorm:"column:PostID;primaryKey;autoIncrement" json:"post_id"`
	MediaID uint      `gorm:"column:MediaID;index:idx_post_media;not null" json:"media_id"`
	Title   string    `gorm:"column:Title;type:varchar(120);not null" json:"title"`
	Date    time.Time `gorm:"column:Date;index:idx_post_date" json:"date"`
	Content string    `gorm:"column:Content;type:text" json:"content"`
	Spoiler bool      `gorm:"column:Spoiler;default:false" json:"spoiler"`
	Rating  *int      `gorm:"column:Rating" json:"rating,omitempty"`
}

func (Post) TableName() string { return "post" }
