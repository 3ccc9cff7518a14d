package contract

import (
	"context"

	"musichub-be/internal/repository/specification"
)

type NoteViewRepository interface {
	// CreateIfAbsent records that userId viewed noteId. It reports false when
	// the pair was already recorded.
	CreateIfAbsent(ctx context.Context, noteId, userId int64) (bool, error)
}

type NoteLikeRepository interface {
	Create(ctx context.Context, noteId, userId int64) error
	// Delete removes the like and reports whether one existed.
	Delete(ctx context.Context, noteId, userId int64) (bool, error)
	CountByUser(ctx context.Context, userId int64) (int64, error)
	FindNoteIdsByUser(ctx context.Context, userId int64, page specification.Pagination) ([]int64, error)
}
