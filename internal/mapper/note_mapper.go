package mapper

import (
	"sort"

	"musichub-be/internal/dto"
	"musichub-be/internal/entity"
	"musichub-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// FoldRows collapses the one-row-per-tag hydration join into one note per id.
// Tags keep first-seen order and never repeat an id. The returned notes follow
// the first appearance of each note id in rows.
func (m *NoteMapper) FoldRows(rows []*model.NoteDetailRow) []*entity.Note {
	notes := make([]*entity.Note, 0)
	byId := make(map[int64]*entity.Note)
	seenTags := make(map[int64]map[int64]struct{})

	for _, r := range rows {
		if r == nil {
			continue
		}

		note, ok := byId[r.NoteId]
		if !ok {
			note = m.noteFromRow(r)
			byId[r.NoteId] = note
			seenTags[r.NoteId] = make(map[int64]struct{})
			notes = append(notes, note)
		}

		if r.TagId == nil {
			continue
		}
		if _, dup := seenTags[r.NoteId][*r.TagId]; dup {
			continue
		}
		seenTags[r.NoteId][*r.TagId] = struct{}{}

		tag := entity.Tag{Id: *r.TagId}
		if r.TagName != nil {
			tag.Name = *r.TagName
		}
		note.Tags = append(note.Tags, tag)
	}

	return notes
}

func (m *NoteMapper) noteFromRow(r *model.NoteDetailRow) *entity.Note {
	note := &entity.Note{
		Id:            r.NoteId,
		Title:         r.Title,
		OwnerId:       r.UserId,
		PdfUrl:        r.PdfUrl,
		AudioUrl:      r.AudioUrl,
		CoverImageUrl: r.CoverImageUrl,
		Description:   r.Description,
		Difficulty:    r.Difficulty,
		CreatedAt:     r.CreatedAt,
		Tags:          make([]entity.Tag, 0),
	}
	if r.IsPublic != nil {
		note.IsPublic = *r.IsPublic
	}
	if r.Views != nil {
		note.Views = *r.Views
	}

	if r.SizeId != nil {
		ts := &entity.TimeSignature{Id: *r.SizeId}
		if r.SizeName != nil {
			ts.Name = *r.SizeName
		}
		note.TimeSignature = ts
	}

	if r.AuthorId != nil {
		note.Author = &entity.Author{
			Id:        *r.AuthorId,
			FirstName: r.AuthorFirstName,
			LastName:  r.AuthorLastName,
			Email:     r.AuthorEmail,
		}
	}

	return note
}

// OrderByIds sorts notes to follow ids. Notes whose id is not in ids are dropped;
// ids without a note are skipped.
func (m *NoteMapper) OrderByIds(notes []*entity.Note, ids []int64) []*entity.Note {
	position := make(map[int64]int, len(ids))
	for i, id := range ids {
		if _, ok := position[id]; !ok {
			position[id] = i
		}
	}

	ordered := make([]*entity.Note, 0, len(notes))
	for _, n := range notes {
		if _, ok := position[n.Id]; ok {
			ordered = append(ordered, n)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return position[ordered[i].Id] < position[ordered[j].Id]
	})

	return ordered
}

func (m *NoteMapper) ToResponse(n *entity.Note) *dto.NoteResponse {
	if n == nil {
		return nil
	}

	res := &dto.NoteResponse{
		Id:            n.Id,
		Title:         n.Title,
		OwnerId:       n.OwnerId,
		PdfUrl:        n.PdfUrl,
		AudioUrl:      n.AudioUrl,
		CoverImageUrl: n.CoverImageUrl,
		Description:   n.Description,
		Difficulty:    n.Difficulty,
		IsPublic:      n.IsPublic,
		CreatedAt:     n.CreatedAt,
		Views:         n.Views,
		Tags:          make([]dto.TagResponse, 0, len(n.Tags)),
	}

	if n.TimeSignature != nil {
		res.Size = &dto.TimeSignatureResponse{Id: n.TimeSignature.Id, Name: n.TimeSignature.Name}
	}
	if n.Author != nil {
		res.Author = &dto.AuthorResponse{
			Id:        n.Author.Id,
			FirstName: n.Author.FirstName,
			LastName:  n.Author.LastName,
			Email:     n.Author.Email,
		}
	}
	for _, t := range n.Tags {
		res.Tags = append(res.Tags, dto.TagResponse{Id: t.Id, Name: t.Name})
	}

	return res
}

func (m *NoteMapper) ToResponses(notes []*entity.Note) []*dto.NoteResponse {
	responses := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = m.ToResponse(n)
	}
	return responses
}
