package model

// 三张观影状态表结构相同，(UserID, MediaID) 为复合主键保证幂等

type Watched struct {
	UserID  uint `gorm:"column:UserID;primaryKey;autoIncrement:false" json:"user_id"`
	MediaID uint `gorm:"column:MediaID;primaryKey;autoIncrement:false" json:"media_id"`
}

func (Watched) TableName() string { return "watched" }

type Watching struct {
	UserID  uint `gorm:"column:UserID;primaryKey;autoIncrement:false" json:"user_id"`
	MediaID uint `gorm:"column:MediaID;primaryKey;autoIncrement:false" json:"media_id"`
}

func (Watching) TableName() string { return "watching" }

type Watchlist struct {
	UserID  uint `gorm:"column:UserID;primaryKey;autoIncrement:false" json:"user_id"`
	MediaID uint `gorm:"column:MediaID;primaryKey;autoIncrement:false" json:"media_id"`
}

func (Watchlist) TableName() string { return "watchlist" }

// Watch relation table names, used by the parameterized watch repository.
const (
	TableWatched   = "watched"
	TableWatching  = "watching"
	TableWatchlist = "watchlist"
)
