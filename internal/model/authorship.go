package model

// Creates 发帖归属（user -> post），所有权的唯一事实来源
type Creates struct {
	UserID uint `gorm:"column:UserID;primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint `gorm:"column:PostID;primaryKey;autoIncrement:false;index:idx_creates_post" json:"post_id"`
}

func (Creates) TableName() string { return "creates" }

// Makes 评论归属（user -> comment）
type Makes struct {
	UserID    uint `gorm:"column:UserID;primaryKey;autoIncrement:false" json:"user_id"`
	CommentID uint `gorm:"column:CommentID;primaryKey;autoIncrement:false;index:idx_makes_comment" json:"comment_id"`
}

func (Makes) TableName() string { return "makes" }
