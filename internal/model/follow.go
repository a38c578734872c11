package model

// Follow 关注关系的有向边：FollowerID 关注 UserID
type Follow struct {
	UserID     uint `gorm:"column:UserID;primaryKey;autoIncrement:false;index:idx_follow_user" json:"user_id"`
	FollowerID uint `gorm:"column:FollowerID;primaryKey;autoIncrement:false;index:idx_follow_follower" json:"follower_id"`
	// 复合主键兼唯一约束，避免重复关注
	// idx_follow_pair = (UserID, FollowerID)
}

func (Follow) TableName() string { return "follows" }
