package implementation

import (
	"context"
	"testing"

	"musichub-be/internal/pkg/testdb"
	"musichub-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepositoryFindAllOrdersByName(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	seed := testdb.NewSeeder(t, db)
	seed.Tag("Waltz")
	seed.Tag("Blues")
	seed.Tag("Etude")

	repo := NewTagRepository(db)

	tags, err := repo.FindAll(ctx, specification.Pagination{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Blues", tags[0].Name)
	assert.Equal(t, "Etude", tags[1].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestTimeSignatureRepositoryFindAll(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	seed := testdb.NewSeeder(t, db)
	seed.TimeSignature("6/8")
	seed.TimeSignature("3/4")

	repo := NewTimeSignatureRepository(db)

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "3/4", items[0].Name)
}
