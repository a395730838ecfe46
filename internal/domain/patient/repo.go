package patient

import (
	"context"

	"github.com/imagems/console/pkg/pagination"
)

// Repository maps patient operations onto backend calls, one request each.
type Repository interface {
	List(ctx context.Context, q pagination.Query) (pagination.Result[Patient], error)
	Get(ctx context.Context, id int64) (*Patient, error)
	Create(ctx context.Context, in Input) (*Patient, error)
	Update(ctx context.Context, id int64, in Input) (*Patient, error)
	Delete(ctx context.Context, id int64) error
}
