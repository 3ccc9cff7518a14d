package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"musichub-be/internal/dto"
	"musichub-be/internal/entity"
	"musichub-be/internal/mapper"
	"musichub-be/internal/metrics"
	"musichub-be/internal/pkg/logger"
	"musichub-be/internal/repository/specification"
	"musichub-be/internal/repository/unitofwork"
	"musichub-be/pkg/events"
)

var ErrNoteNotFound = errors.New("note not found")

// EventPublisher delivers domain events. A nil publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type INoteService interface {
	List(ctx context.Context, req *dto.NoteListRequest) (*dto.NoteListResponse, error)
	Show(ctx context.Context, id int64) (*dto.NoteResponse, error)
	TrackView(ctx context.Context, userId, noteId int64) (*dto.NoteViewResponse, error)
	ToggleLike(ctx context.Context, userId, noteId int64) (*dto.NoteLikeResponse, error)
	ListFavorites(ctx context.Context, userId int64, page dto.PageRequest) (*dto.NoteListResponse, error)
}

type noteService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher EventPublisher
	logger         logger.ILogger
	mapper         *mapper.NoteMapper
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher EventPublisher,
	sysLogger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         sysLogger,
		mapper:         mapper.NewNoteMapper(),
	}
}

// List runs the listing pipeline: distinct count, ranked id page, hydrate.
// The three reads are not in one transaction; a note deleted in between is
// simply missing from the page.
func (s *noteService) List(ctx context.Context, req *dto.NoteListRequest) (*dto.NoteListResponse, error) {
	operation := "list"
	if req.OwnerId != nil {
		operation = "list_by_owner"
	}
	start := time.Now()
	defer func() {
		metrics.NoteListDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NoteRepository()
	filter := specification.NoteListFilter{Filters: req.Filters, OwnerId: req.OwnerId}

	total, err := repo.Count(ctx, filter)
	if err != nil {
		metrics.NoteListErrors.WithLabelValues(operation, "count").Inc()
		return nil, fmt.Errorf("count notes: %w", err)
	}

	ids, err := repo.FindPageIds(ctx, filter, specification.Pagination{
		Limit:  req.Limit,
		Offset: req.Offset(),
	})
	if err != nil {
		metrics.NoteListErrors.WithLabelValues(operation, "page").Inc()
		return nil, fmt.Errorf("select note page: %w", err)
	}

	notes, err := repo.Hydrate(ctx, ids)
	if err != nil {
		metrics.NoteListErrors.WithLabelValues(operation, "hydrate").Inc()
		return nil, fmt.Errorf("hydrate notes: %w", err)
	}

	metrics.NoteListResults.WithLabelValues(operation).Add(float64(len(notes)))

	return &dto.NoteListResponse{
		Data: s.mapper.ToResponses(notes),
		Meta: dto.NewPageMeta(total, req.PageRequest),
	}, nil
}

func (s *noteService) Show(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().Hydrate(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("hydrate note %d: %w", id, err)
	}
	if len(notes) == 0 {
		return nil, ErrNoteNotFound
	}

	return s.mapper.ToResponse(notes[0]), nil
}

// TrackView counts the first view of a note per user.
func (s *noteService) TrackView(ctx context.Context, userId, noteId int64) (*dto.NoteViewResponse, error) {
	result, err := inTransaction(ctx, s.uowFactory, func(uow unitofwork.UnitOfWork) (entity.ViewResult, error) {
		exists, err := uow.NoteRepository().Exists(ctx, noteId)
		if err != nil {
			return entity.ViewResult{}, err
		}
		if !exists {
			return entity.ViewResult{}, ErrNoteNotFound
		}

		inserted, err := uow.NoteViewRepository().CreateIfAbsent(ctx, noteId, userId)
		if err != nil {
			return entity.ViewResult{}, err
		}
		if inserted {
			if err := uow.NoteRepository().IncrementViews(ctx, noteId); err != nil {
				return entity.ViewResult{}, err
			}
		}
		return entity.ViewResult{Viewed: true, Incremented: inserted}, nil
	})
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("track view of note %d: %w", noteId, err)
	}

	metrics.RecordView(result.Incremented)
	if result.Incremented {
		s.publish(ctx, events.NewNoteEvent(events.NoteViewed, noteId, userId))
	}

	return &dto.NoteViewResponse{
		Status:      "success",
		Viewed:      result.Viewed,
		Incremented: result.Incremented,
	}, nil
}

func (s *noteService) ToggleLike(ctx context.Context, userId, noteId int64) (*dto.NoteLikeResponse, error) {
	result, err := inTransaction(ctx, s.uowFactory, func(uow unitofwork.UnitOfWork) (entity.LikeResult, error) {
		exists, err := uow.NoteRepository().Exists(ctx, noteId)
		if err != nil {
			return entity.LikeResult{}, err
		}
		if !exists {
			return entity.LikeResult{}, ErrNoteNotFound
		}

		removed, err := uow.NoteLikeRepository().Delete(ctx, noteId, userId)
		if err != nil {
			return entity.LikeResult{}, err
		}
		if removed {
			return entity.LikeResult{Liked: false}, nil
		}
		if err := uow.NoteLikeRepository().Create(ctx, noteId, userId); err != nil {
			return entity.LikeResult{}, err
		}
		return entity.LikeResult{Liked: true}, nil
	})
	if err != nil {
		if errors.Is(err, ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("toggle like of note %d: %w", noteId, err)
	}

	eventType := events.NoteUnliked
	if result.Liked {
		eventType = events.NoteLiked
	}
	s.publish(ctx, events.NewNoteEvent(eventType, noteId, userId))

	return &dto.NoteLikeResponse{Status: "success", Liked: result.Liked}, nil
}

// ListFavorites pages the user's liked notes, most recent like first, and
// hydrates them with the same pipeline as the catalog listing.
func (s *noteService) ListFavorites(ctx context.Context, userId int64, page dto.PageRequest) (*dto.NoteListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.NoteLikeRepository().CountByUser(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("count favorites: %w", err)
	}

	ids, err := uow.NoteLikeRepository().FindNoteIdsByUser(ctx, userId, specification.Pagination{
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("select favorites page: %w", err)
	}

	notes, err := uow.NoteRepository().Hydrate(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate favorites: %w", err)
	}

	return &dto.NoteListResponse{
		Data: s.mapper.ToResponses(notes),
		Meta: dto.NewPageMeta(total, page),
	}, nil
}

// inTransaction runs fn on a unit of work inside one transaction and commits
// only when fn succeeds.
func inTransaction[T any](ctx context.Context, factory unitofwork.RepositoryFactory, fn func(uow unitofwork.UnitOfWork) (T, error)) (T, error) {
	var zero T
	uow := factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	result, err := fn(uow)
	if err != nil {
		_ = uow.Rollback()
		return zero, err
	}

	if err := uow.Commit(); err != nil {
		return zero, err
	}
	return result, nil
}

func (s *noteService) publish(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	// notification is auxiliary, never fail the request
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("NOTE", "Failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}
