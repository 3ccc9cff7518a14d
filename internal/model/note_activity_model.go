package model

import "time"

type NoteView struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	NoteId    int64     `gorm:"not null;uniqueIndex:idx_note_view_note_user"`
	UserId    int64     `gorm:"not null;uniqueIndex:idx_note_view_note_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (NoteView) TableName() string {
	return "note_view"
}

type NoteLike struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    int64     `gorm:"not null;uniqueIndex:idx_note_likes_note_user;index"`
	NoteId    int64     `gorm:"not null;uniqueIndex:idx_note_likes_note_user"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (NoteLike) TableName() string {
	return "note_likes"
}
