package model

// User 账号主体
type User struct {
	UserID uint   `gorm:"column:UserID;primaryKey;autoIncrement" json:"user_id"`
	FName  string `gorm:"column:FName;type:varchar(40);not null" json:"first_name"`
	LName  string `gorm:"column:LName;type:varchar(40);not null" json:"last_name"`
	UName  string `gorm:"column:UName;type:varchar(40);uniqueIndex;not null" json:"username"`
	Email  string `gorm:"column:Email;type:varchar(100);uniqueIndex;not null" json:"email"`
	PWord  string `gorm:"column:PWord;type:varchar(256);not null" json:"-"`
}

func (User) TableName() string { return "user" }
