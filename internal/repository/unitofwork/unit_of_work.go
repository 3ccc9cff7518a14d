package unitofwork

import (
	"context"

	"musichub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NoteRepository() contract.NoteRepository
	TagRepository() contract.TagRepository
	TimeSignatureRepository() contract.TimeSignatureRepository
	NoteViewRepository() contract.NoteViewRepository
	NoteLikeRepository() contract.NoteLikeRepository
}
