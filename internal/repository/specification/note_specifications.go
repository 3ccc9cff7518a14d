package specification

import (
	"strings"

	"musichub-be/pkg/search"

	"gorm.io/gorm"
)

type predicate struct {
	clause string
	args   []interface{}
}

// anyOf OR-reduces parts into one parenthesised predicate.
func anyOf(parts []predicate) predicate {
	clauses := make([]string, 0, len(parts))
	var args []interface{}
	for _, p := range parts {
		clauses = append(clauses, p.clause)
		args = append(args, p.args...)
	}
	return predicate{
		clause: "(" + strings.Join(clauses, " OR ") + ")",
		args:   args,
	}
}

func namesContain(column string, names []string) []predicate {
	parts := make([]predicate, 0, len(names))
	for _, name := range names {
		parts = append(parts, predicate{
			clause: containsClause(column),
			args:   []interface{}{ContainsPattern(name)},
		})
	}
	return parts
}

// NoteListFilter is the WHERE side of the note listing. Each active category
// (free text, time signature, tag, owner) becomes one term; terms are AND-ed.
// Inside a category, id matches and name matches are OR-ed.
type NoteListFilter struct {
	Filters search.NoteFilters
	OwnerId *int64
}

// JoinsTags reports whether the filter fans out over note_tags.
func (s NoteListFilter) JoinsTags() bool {
	return s.Filters.HasTagFilter()
}

func (s NoteListFilter) terms() []predicate {
	var terms []predicate
	f := s.Filters

	if f.HasFreeText() {
		terms = append(terms, predicate{
			clause: containsClause("notes.title"),
			args:   []interface{}{ContainsPattern(f.FreeText)},
		})
	}

	if f.HasTimeSignatureFilter() {
		var parts []predicate
		if len(f.TimeSignatureIds) > 0 {
			parts = append(parts, predicate{clause: "notes.time_signature_id IN ?", args: []interface{}{f.TimeSignatureIds}})
		}
		parts = append(parts, namesContain("time_signatures.name", f.TimeSignatureNames)...)
		parts = append(parts, namesContain("time_signatures.name", f.SizeNames)...)
		terms = append(terms, anyOf(parts))
	}

	if f.HasTagFilter() {
		var parts []predicate
		if len(f.TagIds) > 0 {
			parts = append(parts, predicate{clause: "note_tags.tag_id IN ?", args: []interface{}{f.TagIds}})
		}
		parts = append(parts, namesContain("tags.name", f.TagNames)...)
		terms = append(terms, anyOf(parts))
	}

	if s.OwnerId != nil {
		terms = append(terms, predicate{clause: "notes.user_id = ?", args: []interface{}{*s.OwnerId}})
	}

	return terms
}

func (s NoteListFilter) Apply(db *gorm.DB) *gorm.DB {
	f := s.Filters

	if len(f.TimeSignatureNames) > 0 || len(f.SizeNames) > 0 {
		db = db.Joins("LEFT JOIN time_signatures ON time_signatures.id = notes.time_signature_id")
	}
	if f.HasTagFilter() {
		db = db.Joins("JOIN note_tags ON note_tags.note_id = notes.id")
		if len(f.TagNames) > 0 {
			db = db.Joins("JOIN tags ON tags.id = note_tags.tag_id")
		}
	}

	// no terms, no WHERE
	for _, term := range s.terms() {
		db = db.Where(term.clause, term.args...)
	}
	return db
}

// LikedByUser restricts note_likes rows to one user.
type LikedByUser struct {
	UserID int64
}

func (s LikedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("note_likes.user_id = ?", s.UserID)
}
