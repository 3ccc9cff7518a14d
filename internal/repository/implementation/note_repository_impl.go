package implementation

import (
	"context"

	"musichub-be/internal/entity"
	"musichub-be/internal/mapper"
	"musichub-be/internal/model"
	"musichub-be/internal/repository/contract"
	"musichub-be/internal/repository/scope"
	"musichub-be/internal/repository/specification"

	"gorm.io/gorm"
)

const hydrateColumns = `notes.id AS note_id,
	notes.title AS title,
	notes.user_id AS user_id,
	notes.pdf_url AS pdf_url,
	notes.audio_url AS audio_url,
	notes.cover_image_url AS cover_image_url,
	notes.description AS description,
	notes.difficulty AS difficulty,
	notes.is_public AS is_public,
	notes.views AS views,
	notes.created_at AS created_at,
	time_signatures.id AS size_id,
	time_signatures.name AS size_name,
	users.id AS author_id,
	users.first_name AS author_first_name,
	users.last_name AS author_last_name,
	users.email AS author_email,
	tags.id AS tag_id,
	tags.name AS tag_name`

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) Count(ctx context.Context, filter specification.NoteListFilter) (int64, error) {
	var total int64
	query := filter.Apply(r.db.WithContext(ctx).Model(&model.Note{}))
	// the tag join fans out, so count notes, not rows
	if err := query.Select("COUNT(DISTINCT notes.id)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *NoteRepositoryImpl) FindPageIds(ctx context.Context, filter specification.NoteListFilter, page specification.Pagination) ([]int64, error) {
	var ranks []model.NoteRank
	query := filter.Apply(r.db.WithContext(ctx).Model(&model.Note{}))

	if filter.JoinsTags() {
		// one group per note; notes matching more of the requested tags first
		query = query.
			Select("notes.id AS id, COUNT(DISTINCT note_tags.tag_id) AS match_count").
			Group("notes.id, notes.created_at").
			Order("match_count DESC")
	} else {
		query = query.Select("notes.id AS id, 0 AS match_count")
	}

	query = page.Apply(query.Scopes(scope.OrderByNewestNote))
	if err := query.Scan(&ranks).Error; err != nil {
		return nil, err
	}

	ids := make([]int64, len(ranks))
	for i, rank := range ranks {
		ids[i] = rank.Id
	}
	return ids, nil
}

func (r *NoteRepositoryImpl) Hydrate(ctx context.Context, ids []int64) ([]*entity.Note, error) {
	if len(ids) == 0 {
		return []*entity.Note{}, nil
	}

	var rows []*model.NoteDetailRow
	err := r.db.WithContext(ctx).
		Model(&model.Note{}).
		Select(hydrateColumns).
		Joins("LEFT JOIN users ON users.id = notes.user_id").
		Joins("LEFT JOIN time_signatures ON time_signatures.id = notes.time_signature_id").
		Joins("LEFT JOIN note_tags ON note_tags.note_id = notes.id").
		Joins("LEFT JOIN tags ON tags.id = note_tags.tag_id").
		Where("notes.id IN ?", ids).
		Order("notes.id ASC").
		Order("tags.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// IN (...) does not keep the planner's order
	notes := r.mapper.FoldRows(rows)
	return r.mapper.OrderByIds(notes, ids), nil
}

func (r *NoteRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	query := specification.ByID{Table: "notes", ID: id}.Apply(r.db.WithContext(ctx).Model(&model.Note{}))
	if err := query.Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *NoteRepositoryImpl) IncrementViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
