package model

import "time"

type Note struct {
	Id                 int64     `gorm:"primaryKey;autoIncrement"`
	UserId             *int64    `gorm:"index"`
	Title              string    `gorm:"type:varchar(255);not null"`
	TimeSignatureId    *int64    `gorm:"index"`
	PdfUrl             *string   `gorm:"type:text"`
	PdfPublicId        *string   `gorm:"type:text"`
	AudioUrl           *string   `gorm:"type:text"`
	AudioPublicId      *string   `gorm:"type:text"`
	CoverImageUrl      *string   `gorm:"type:text"`
	CoverImagePublicId *string   `gorm:"type:text"`
	Description        *string   `gorm:"type:text"`
	Difficulty         *string   `gorm:"type:varchar(20)"`
	IsPublic           bool      `gorm:"not null;default:false"`
	Views              int64     `gorm:"not null;default:0"`
	CreatedAt          time.Time `gorm:"autoCreateTime;index"`
}

func (Note) TableName() string {
	return "notes"
}

// NoteDetailRow is one row of the hydration join: a note with at most one tag.
// Notes with several tags produce one row per tag.
type NoteDetailRow struct {
	NoteId          int64
	Title           string
	UserId          *int64
	PdfUrl          *string
	AudioUrl        *string
	CoverImageUrl   *string
	Description     *string
	Difficulty      *string
	IsPublic        *bool
	Views           *int64
	CreatedAt       *time.Time
	SizeId          *int64
	SizeName        *string
	AuthorId        *int64
	AuthorFirstName *string
	AuthorLastName  *string
	AuthorEmail     *string
	TagId           *int64
	TagName         *string
}

// NoteRank is one row of the id page query.
type NoteRank struct {
	Id         int64
	MatchCount int64
}
