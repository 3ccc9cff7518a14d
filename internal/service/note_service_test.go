package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"testing"

	"musichub-be/internal/dto"
	"musichub-be/internal/pkg/logger"
	"musichub-be/internal/pkg/testdb"
	"musichub-be/internal/repository/unitofwork"
	"musichub-be/pkg/events"
	"musichub-be/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.EventType()
	}
	return types
}

func newNoteService(t *testing.T) (INoteService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db := testdb.New(t)
	publisher := &recordingPublisher{}
	svc := NewNoteService(unitofwork.NewRepositoryFactory(db), publisher, logger.NewNopLogger())
	return svc, db, publisher
}

func responseIds(notes []*dto.NoteResponse) []int64 {
	ids := make([]int64, len(notes))
	for i, n := range notes {
		ids[i] = n.Id
	}
	return ids
}

func TestNoteServiceListPagination(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newNoteService(t)
	seed := testdb.NewSeeder(t, db)
	for i := 0; i < 25; i++ {
		seed.Note(fmt.Sprintf("Study %02d", i+1))
	}

	tests := []struct {
		name     string
		page     string
		limit    string
		wantLen  int
		wantMeta dto.PageMeta
		wantHead string
	}{
		{
			name:     "defaults",
			wantLen:  10,
			wantMeta: dto.PageMeta{TotalItems: 25, TotalPages: 3, CurrentPage: 1, Limit: 10},
			wantHead: "Study 25",
		},
		{
			name:     "last partial page",
			page:     "3",
			limit:    "10",
			wantLen:  5,
			wantMeta: dto.PageMeta{TotalItems: 25, TotalPages: 3, CurrentPage: 3, Limit: 10},
			wantHead: "Study 05",
		},
		{
			name:     "past the last page",
			page:     "4",
			limit:    "10",
			wantLen:  0,
			wantMeta: dto.PageMeta{TotalItems: 25, TotalPages: 3, CurrentPage: 4, Limit: 10},
		},
		{
			name:     "page far past the end does not wrap around",
			page:     strconv.Itoa(math.MaxInt),
			limit:    "10",
			wantLen:  0,
			wantMeta: dto.PageMeta{TotalItems: 25, TotalPages: 3, CurrentPage: math.MaxInt, Limit: 10},
		},
		{
			name:     "limit is capped",
			limit:    "500",
			wantLen:  25,
			wantMeta: dto.PageMeta{TotalItems: 25, TotalPages: 1, CurrentPage: 1, Limit: 50},
			wantHead: "Study 25",
		},
		{
			name:     "invalid values fall back to defaults",
			page:     "-2",
			limit:    "ten",
			wantLen:  10,
			wantMeta: dto.PageMeta{TotalItems: 25, TotalPages: 3, CurrentPage: 1, Limit: 10},
			wantHead: "Study 25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.List(ctx, &dto.NoteListRequest{PageRequest: dto.NewPageRequest(tt.page, tt.limit)})
			require.NoError(t, err)

			assert.Len(t, res.Data, tt.wantLen)
			assert.NotNil(t, res.Data)
			assert.Equal(t, tt.wantMeta, res.Meta)
			if tt.wantHead != "" {
				assert.Equal(t, tt.wantHead, res.Data[0].Title)
			}
		})
	}
}

func TestNoteServiceListFiltersAndHydrates(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newNoteService(t)
	seed := testdb.NewSeeder(t, db)

	author := seed.User("Scott", "joplin@example.com")
	common := seed.TimeSignature("2/4")
	ragtime := seed.Tag("Ragtime")
	piano := seed.Tag("Piano")

	entertainer := seed.Note("The Entertainer", testdb.WithOwner(author.Id), testdb.WithTimeSignature(common.Id))
	maple := seed.Note("Maple Leaf Rag", testdb.WithOwner(author.Id))
	seed.Note("Clair de Lune")
	seed.TagNote(entertainer.Id, ragtime.Id, piano.Id)
	seed.TagNote(maple.Id, ragtime.Id)

	req := &dto.NoteListRequest{
		PageRequest: dto.NewPageRequest("", ""),
		Filters: search.ParseFilters(search.RawFilters{
			Tags: []string{fmt.Sprintf(`[%d, "piano"]`, ragtime.Id)},
		}),
	}

	res, err := svc.List(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []int64{entertainer.Id, maple.Id}, responseIds(res.Data))
	assert.Equal(t, int64(2), res.Meta.TotalItems)

	first := res.Data[0]
	require.NotNil(t, first.Size)
	assert.Equal(t, "2/4", first.Size.Name)
	require.NotNil(t, first.Author)
	assert.Equal(t, "joplin@example.com", *first.Author.Email)
	assert.Equal(t, []dto.TagResponse{{Id: ragtime.Id, Name: "Ragtime"}, {Id: piano.Id, Name: "Piano"}}, first.Tags)

	assert.Nil(t, res.Data[1].Size)
}

func TestNoteServiceListByOwner(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newNoteService(t)
	seed := testdb.NewSeeder(t, db)

	owner := seed.User("Amy", "amy@example.com")
	mine := seed.Note("Mine", testdb.WithOwner(owner.Id))
	seed.Note("Not mine")

	res, err := svc.List(ctx, &dto.NoteListRequest{
		PageRequest: dto.NewPageRequest("", ""),
		OwnerId:     &owner.Id,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{mine.Id}, responseIds(res.Data))
}

func TestNoteServiceListEmptyStore(t *testing.T) {
	svc, _, _ := newNoteService(t)

	res, err := svc.List(context.Background(), &dto.NoteListRequest{PageRequest: dto.NewPageRequest("", "")})
	require.NoError(t, err)

	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Equal(t, dto.PageMeta{TotalItems: 0, TotalPages: 0, CurrentPage: 1, Limit: 10}, res.Meta)
}

func TestNoteServiceListStoreFailure(t *testing.T) {
	svc, db, _ := newNoteService(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = svc.List(context.Background(), &dto.NoteListRequest{PageRequest: dto.NewPageRequest("", "")})
	assert.Error(t, err)
}

func TestNoteServiceListCancelledContext(t *testing.T) {
	svc, db, _ := newNoteService(t)
	testdb.NewSeeder(t, db).Note("Requiem")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.List(ctx, &dto.NoteListRequest{PageRequest: dto.NewPageRequest("", "")})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestNoteServiceShow(t *testing.T) {
	ctx := context.Background()
	svc, db, _ := newNoteService(t)
	note := testdb.NewSeeder(t, db).Note("Canon in D")

	res, err := svc.Show(ctx, note.Id)
	require.NoError(t, err)
	assert.Equal(t, "Canon in D", res.Title)
	assert.NotNil(t, res.Tags)

	_, err = svc.Show(ctx, note.Id+100)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteServiceTrackView(t *testing.T) {
	ctx := context.Background()
	svc, db, publisher := newNoteService(t)
	seed := testdb.NewSeeder(t, db)
	user := seed.User("Ana", "ana@example.com")
	other := seed.User("Ben", "ben@example.com")
	note := seed.Note("Clair de Lune")

	res, err := svc.TrackView(ctx, user.Id, note.Id)
	require.NoError(t, err)
	assert.Equal(t, &dto.NoteViewResponse{Status: "success", Viewed: true, Incremented: true}, res)

	res, err = svc.TrackView(ctx, user.Id, note.Id)
	require.NoError(t, err)
	assert.False(t, res.Incremented)

	_, err = svc.TrackView(ctx, other.Id, note.Id)
	require.NoError(t, err)

	shown, err := svc.Show(ctx, note.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), shown.Views)
	assert.Equal(t, []string{events.NoteViewed, events.NoteViewed}, publisher.types())

	_, err = svc.TrackView(ctx, user.Id, note.Id+100)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteServiceToggleLikeAndFavorites(t *testing.T) {
	ctx := context.Background()
	svc, db, publisher := newNoteService(t)
	seed := testdb.NewSeeder(t, db)
	user := seed.User("Ana", "ana@example.com")
	minuet := seed.Note("Minuet")
	gavotte := seed.Note("Gavotte")

	res, err := svc.ToggleLike(ctx, user.Id, minuet.Id)
	require.NoError(t, err)
	assert.True(t, res.Liked)

	res, err = svc.ToggleLike(ctx, user.Id, gavotte.Id)
	require.NoError(t, err)
	assert.True(t, res.Liked)

	favorites, err := svc.ListFavorites(ctx, user.Id, dto.NewPageRequest("", ""))
	require.NoError(t, err)
	assert.Equal(t, []int64{gavotte.Id, minuet.Id}, responseIds(favorites.Data))
	assert.Equal(t, int64(2), favorites.Meta.TotalItems)

	res, err = svc.ToggleLike(ctx, user.Id, minuet.Id)
	require.NoError(t, err)
	assert.False(t, res.Liked)

	favorites, err = svc.ListFavorites(ctx, user.Id, dto.NewPageRequest("", ""))
	require.NoError(t, err)
	assert.Equal(t, []int64{gavotte.Id}, responseIds(favorites.Data))

	assert.Equal(t, []string{events.NoteLiked, events.NoteLiked, events.NoteUnliked}, publisher.types())

	_, err = svc.ToggleLike(ctx, user.Id, gavotte.Id+100)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteServicePublishFailureDoesNotFailRequest(t *testing.T) {
	ctx := context.Background()
	svc, db, publisher := newNoteService(t)
	publisher.err = errors.New("nats: no responders available")
	seed := testdb.NewSeeder(t, db)
	user := seed.User("Ana", "ana@example.com")
	note := seed.Note("Arabesque")

	res, err := svc.ToggleLike(ctx, user.Id, note.Id)
	require.NoError(t, err)
	assert.True(t, res.Liked)
}

func TestNoteServiceWithoutPublisher(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	svc := NewNoteService(unitofwork.NewRepositoryFactory(db), nil, logger.NewNopLogger())
	seed := testdb.NewSeeder(t, db)
	user := seed.User("Ana", "ana@example.com")
	note := seed.Note("Arabesque")

	res, err := svc.TrackView(ctx, user.Id, note.Id)
	require.NoError(t, err)
	assert.True(t, res.Incremented)
}
