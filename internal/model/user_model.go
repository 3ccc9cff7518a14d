package model

import "time"

type User struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Email     *string   `gorm:"type:varchar(255);uniqueIndex"`
	Password  *string   `gorm:"type:text"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'"`
	FirstName *string   `gorm:"type:varchar(255)"`
	LastName  *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
