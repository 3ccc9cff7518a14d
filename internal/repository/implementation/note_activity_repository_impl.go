package implementation

import (
	"context"

	"musichub-be/internal/model"
	"musichub-be/internal/repository/contract"
	"musichub-be/internal/repository/scope"
	"musichub-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteViewRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteViewRepository(db *gorm.DB) contract.NoteViewRepository {
	return &NoteViewRepositoryImpl{db: db}
}

func (r *NoteViewRepositoryImpl) CreateIfAbsent(ctx context.Context, noteId, userId int64) (bool, error) {
	m := &model.NoteView{NoteId: noteId, UserId: userId}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

type NoteLikeRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteLikeRepository(db *gorm.DB) contract.NoteLikeRepository {
	return &NoteLikeRepositoryImpl{db: db}
}

func (r *NoteLikeRepositoryImpl) Create(ctx context.Context, noteId, userId int64) error {
	m := &model.NoteLike{NoteId: noteId, UserId: userId}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
}

func (r *NoteLikeRepositoryImpl) Delete(ctx context.Context, noteId, userId int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("note_id = ? AND user_id = ?", noteId, userId).
		Delete(&model.NoteLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *NoteLikeRepositoryImpl) likedNotes(ctx context.Context, userId int64) *gorm.DB {
	// likes of deleted notes are not listed
	query := r.db.WithContext(ctx).
		Model(&model.NoteLike{}).
		Joins("JOIN notes ON notes.id = note_likes.note_id")
	return specification.LikedByUser{UserID: userId}.Apply(query)
}

func (r *NoteLikeRepositoryImpl) CountByUser(ctx context.Context, userId int64) (int64, error) {
	var count int64
	if err := r.likedNotes(ctx, userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *NoteLikeRepositoryImpl) FindNoteIdsByUser(ctx context.Context, userId int64, page specification.Pagination) ([]int64, error) {
	var ids []int64
	query := page.Apply(r.likedNotes(ctx, userId).Scopes(scope.OrderByRecentLike))
	if err := query.Pluck("note_likes.note_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
