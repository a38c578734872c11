package model

// TVMovie 媒体条目（电影或剧集）
type TVMovie struct {
	MediaID uint   `gorm:"column:MediaID;primaryKey;autoIncrement" json:"media_id"`
	Title   string `gorm:"column:Title;type:varchar(120);index;not null" json:"title"`
	Genre   string `gorm:"column:Genre;type:varchar(40)" json:"genre"`
	Year    string `gorm:"column:Year;type:varchar(40)" json:"year"`
	Type    string `gorm:"column:Type;type:varchar(40)" json:"type"`
}

func (TVMovie) TableName() string { return "tvmovie" }

const (
	MediaTypeMovie = "Movie"
	MediaTypeTV    = "TV Show"
)
