package model

type TimeSignature struct {
	Id   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(10);not null"`
}

func (TimeSignature) TableName() string {
	return "time_signatures"
}
