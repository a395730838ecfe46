package user

import (
	"context"

	"github.com/imagems/console/pkg/pagination"
)

// Repository maps system-user operations onto backend calls.
type Repository interface {
	List(ctx context.Context, q pagination.Query) (pagination.Result[User], error)
	Get(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, in Input) (*User, error)
	Update(ctx context.Context, id int64, in Input) (*User, error)
	Delete(ctx context.Context, id int64) error
}
