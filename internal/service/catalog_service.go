package service

import (
	"context"
	"fmt"

	"musichub-be/internal/dto"
	"musichub-be/internal/mapper"
	"musichub-be/internal/metrics"
	"musichub-be/internal/pkg/logger"
	"musichub-be/internal/repository/specification"
	"musichub-be/internal/repository/unitofwork"
	"musichub-be/pkg/cache"
)

type ICatalogService interface {
	ListTags(ctx context.Context, page dto.PageRequest) (*dto.TagListResponse, error)
	ListTimeSignatures(ctx context.Context, page dto.PageRequest) (*dto.TimeSignatureListResponse, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      cache.Cache
	cacheType  string
	logger     logger.ILogger
	mapper     *mapper.CatalogMapper
}

// NewCatalogService serves the tag and time signature lookups. cacheType labels
// the hit/miss metrics ("memory" or "redis").
func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	lookupCache cache.Cache,
	cacheType string,
	sysLogger logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		cache:      lookupCache,
		cacheType:  cacheType,
		logger:     sysLogger,
		mapper:     mapper.NewCatalogMapper(),
	}
}

func (s *catalogService) ListTags(ctx context.Context, page dto.PageRequest) (*dto.TagListResponse, error) {
	key := fmt.Sprintf("tags:%d:%d", page.Page, page.Limit)

	return cached(ctx, s, key, func() (*dto.TagListResponse, error) {
		repo := s.uowFactory.NewUnitOfWork(ctx).TagRepository()

		total, err := repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count tags: %w", err)
		}
		tags, err := repo.FindAll(ctx, specification.Pagination{Limit: page.Limit, Offset: page.Offset()})
		if err != nil {
			return nil, fmt.Errorf("find tags: %w", err)
		}

		return &dto.TagListResponse{
			Data: s.mapper.TagsToResponses(tags),
			Meta: dto.NewPageMeta(total, page),
		}, nil
	})
}

func (s *catalogService) ListTimeSignatures(ctx context.Context, page dto.PageRequest) (*dto.TimeSignatureListResponse, error) {
	key := fmt.Sprintf("time_signatures:%d:%d", page.Page, page.Limit)

	return cached(ctx, s, key, func() (*dto.TimeSignatureListResponse, error) {
		repo := s.uowFactory.NewUnitOfWork(ctx).TimeSignatureRepository()

		total, err := repo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count time signatures: %w", err)
		}
		items, err := repo.FindAll(ctx, specification.Pagination{Limit: page.Limit, Offset: page.Offset()})
		if err != nil {
			return nil, fmt.Errorf("find time signatures: %w", err)
		}

		return &dto.TimeSignatureListResponse{
			Data: s.mapper.TimeSignaturesToResponses(items),
			Meta: dto.NewPageMeta(total, page),
		}, nil
	})
}

// cached reads key from the lookup cache and falls back to load on a miss.
// A broken cache only costs a database round trip.
func cached[T any](ctx context.Context, s *catalogService, key string, load func() (*T, error)) (*T, error) {
	var hit T
	found, err := s.cache.Get(ctx, key, &hit)
	if err != nil {
		s.logger.Warn("CATALOG", "Cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	if found {
		metrics.CacheHits.WithLabelValues(s.cacheType).Inc()
		return &hit, nil
	}
	metrics.CacheMisses.WithLabelValues(s.cacheType).Inc()

	res, err := load()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, res); err != nil {
		s.logger.Warn("CATALOG", "Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	return res, nil
}
