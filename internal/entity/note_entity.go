package entity

import "time"

// Note is a fully hydrated catalog entry.
type Note struct {
	Id            int64
	Title         string
	OwnerId       *int64
	PdfUrl        *string
	AudioUrl      *string
	CoverImageUrl *string
	Description   *string
	Difficulty    *string
	IsPublic      bool
	Views         int64
	CreatedAt     *time.Time
	TimeSignature *TimeSignature
	Author        *Author
	Tags          []Tag
}

type Author struct {
	Id        int64
	FirstName *string
	LastName  *string
	Email     *string
}
