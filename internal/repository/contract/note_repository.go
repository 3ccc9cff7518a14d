package contract

import (
	"context"

	"musichub-be/internal/entity"
	"musichub-be/internal/repository/specification"
)

type NoteRepository interface {
	// Count returns the number of distinct notes matching filter.
	Count(ctx context.Context, filter specification.NoteListFilter) (int64, error)
	// FindPageIds returns one page of matching note ids in rank order.
	FindPageIds(ctx context.Context, filter specification.NoteListFilter, page specification.Pagination) ([]int64, error)
	// Hydrate loads the notes for ids, folded and in the order of ids.
	Hydrate(ctx context.Context, ids []int64) ([]*entity.Note, error)
	Exists(ctx context.Context, id int64) (bool, error)
	IncrementViews(ctx context.Context, id int64) error
}
