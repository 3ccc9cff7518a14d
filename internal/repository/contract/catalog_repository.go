package contract

import (
	"context"

	"musichub-be/internal/entity"
	"musichub-be/internal/repository/specification"
)

type TagRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TimeSignatureRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TimeSignature, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
