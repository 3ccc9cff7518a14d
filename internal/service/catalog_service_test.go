package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"musichub-be/internal/dto"
	"musichub-be/internal/pkg/logger"
	"musichub-be/internal/pkg/testdb"
	"musichub-be/internal/repository/unitofwork"
	"musichub-be/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCache struct{}

func (brokenCache) Get(context.Context, string, interface{}) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func (brokenCache) Set(context.Context, string, interface{}) error {
	return errors.New("redis: connection refused")
}

func TestCatalogServiceListTagsIsCached(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	seed := testdb.NewSeeder(t, db)
	seed.Tag("Jazz")
	seed.Tag("Blues")

	svc := NewCatalogService(unitofwork.NewRepositoryFactory(db), cache.NewMemoryCache(time.Minute), "memory", logger.NewNopLogger())
	page := dto.NewPageRequest("1", "10")

	first, err := svc.ListTags(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, []dto.TagResponse{{Id: 2, Name: "Blues"}, {Id: 1, Name: "Jazz"}}, first.Data)
	assert.Equal(t, dto.PageMeta{TotalItems: 2, TotalPages: 1, CurrentPage: 1, Limit: 10}, first.Meta)

	seed.Tag("Folk")

	second, err := svc.ListTags(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// another page size is another key
	third, err := svc.ListTags(ctx, dto.NewPageRequest("1", "5"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.Meta.TotalItems)
}

func TestCatalogServiceFallsBackWhenCacheFails(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	seed := testdb.NewSeeder(t, db)
	seed.TimeSignature("4/4")
	seed.TimeSignature("3/4")

	svc := NewCatalogService(unitofwork.NewRepositoryFactory(db), brokenCache{}, "redis", logger.NewNopLogger())

	res, err := svc.ListTimeSignatures(ctx, dto.NewPageRequest("", ""))
	require.NoError(t, err)
	assert.Equal(t, []dto.TimeSignatureResponse{{Id: 2, Name: "3/4"}, {Id: 1, Name: "4/4"}}, res.Data)
	assert.Equal(t, int64(2), res.Meta.TotalItems)
}
