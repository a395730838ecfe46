package user

import (
	"context"
	"fmt"

	"github.com/imagems/console/internal/gateway"
	"github.com/imagems/console/pkg/pagination"
)

const basePath = "/api/v1/app/users"

type HTTPRepository struct {
	gw *gateway.Client
}

func NewHTTPRepository(gw *gateway.Client) *HTTPRepository {
	return &HTTPRepository{gw: gw}
}

func (r *HTTPRepository) List(ctx context.Context, q pagination.Query) (pagination.Result[User], error) {
	var res pagination.Result[User]
	if err := r.gw.Get(ctx, basePath, q.WireValues(), &res); err != nil {
		return pagination.Result[User]{}, err
	}
	return res, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := r.gw.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *HTTPRepository) Create(ctx context.Context, in Input) (*User, error) {
	var u User
	if err := r.gw.Post(ctx, basePath, in.payload(0), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update PUTs to the collection path with the id in the body, matching the
// backend's user endpoint.
func (r *HTTPRepository) Update(ctx context.Context, id int64, in Input) (*User, error) {
	var u User
	if err := r.gw.Put(ctx, basePath, in.payload(id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id))
}
