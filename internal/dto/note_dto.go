package dto

import (
	"time"

	"musichub-be/pkg/search"
)

type NoteListRequest struct {
	PageRequest
	Filters search.NoteFilters
	OwnerId *int64
}

type NoteIdParam struct {
	Id int64 `validate:"required,gt=0"`
}

type ComposerIdParam struct {
	ComposerId int64 `validate:"required,gt=0"`
}

type TimeSignatureResponse struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type TagResponse struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type AuthorResponse struct {
	Id        int64   `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

type NoteResponse struct {
	Id            int64                  `json:"id"`
	Title         string                 `json:"title"`
	OwnerId       *int64                 `json:"ownerId"`
	PdfUrl        *string                `json:"pdfUrl"`
	AudioUrl      *string                `json:"audioUrl"`
	CoverImageUrl *string                `json:"coverImageUrl"`
	Description   *string                `json:"description"`
	Difficulty    *string                `json:"difficulty"`
	IsPublic      bool                   `json:"isPublic"`
	CreatedAt     *time.Time             `json:"createdAt"`
	Views         int64                  `json:"views"`
	Size          *TimeSignatureResponse `json:"size"`
	Author        *AuthorResponse        `json:"author"`
	Tags          []TagResponse          `json:"tags"`
}

type NoteListResponse struct {
	Data []*NoteResponse `json:"data"`
	Meta PageMeta        `json:"meta"`
}

type NoteViewResponse struct {
	Status      string `json:"status"`
	Viewed      bool   `json:"viewed"`
	Incremented bool   `json:"incremented"`
}

type NoteLikeResponse struct {
	Status string `json:"status"`
	Liked  bool   `json:"liked"`
}
