// Package testdb opens a migrated in-memory SQLite store and seeds catalog rows for tests.
package testdb

import (
	"testing"
	"time"

	"musichub-be/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BaseTime is the creation time of the first seeded note. Each further note is one minute newer.
var BaseTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// New returns a fresh, migrated database that lives as long as the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

type Seeder struct {
	t     testing.TB
	db    *gorm.DB
	notes int
}

func NewSeeder(t testing.TB, db *gorm.DB) *Seeder {
	return &Seeder{t: t, db: db}
}

func (s *Seeder) User(firstName, email string) *model.User {
	s.t.Helper()
	u := &model.User{FirstName: &firstName, Email: &email, Role: "user"}
	require.NoError(s.t, s.db.Create(u).Error)
	return u
}

func (s *Seeder) TimeSignature(name string) *model.TimeSignature {
	s.t.Helper()
	ts := &model.TimeSignature{Name: name}
	require.NoError(s.t, s.db.Create(ts).Error)
	return ts
}

func (s *Seeder) Tag(name string) *model.Tag {
	s.t.Helper()
	tag := &model.Tag{Name: name}
	require.NoError(s.t, s.db.Create(tag).Error)
	return tag
}

type NoteOption func(n *model.Note)

func WithOwner(userId int64) NoteOption {
	return func(n *model.Note) { n.UserId = &userId }
}

func WithTimeSignature(id int64) NoteOption {
	return func(n *model.Note) { n.TimeSignatureId = &id }
}

func WithCreatedAt(at time.Time) NoteOption {
	return func(n *model.Note) { n.CreatedAt = at }
}

// Note inserts a note created one minute after the previously seeded one,
// unless WithCreatedAt says otherwise.
func (s *Seeder) Note(title string, opts ...NoteOption) *model.Note {
	s.t.Helper()
	n := &model.Note{
		Title:     title,
		CreatedAt: BaseTime.Add(time.Duration(s.notes) * time.Minute),
	}
	s.notes++
	for _, opt := range opts {
		opt(n)
	}
	require.NoError(s.t, s.db.Create(n).Error)
	return n
}

func (s *Seeder) TagNote(noteId int64, tagIds ...int64) {
	s.t.Helper()
	for _, tagId := range tagIds {
		require.NoError(s.t, s.db.Create(&model.NoteTag{NoteId: noteId, TagId: tagId}).Error)
	}
}
