package patient

import (
	"context"
	"fmt"

	"github.com/imagems/console/internal/gateway"
	"github.com/imagems/console/pkg/pagination"
)

const basePath = "/api/v1/app/patients"

type HTTPRepository struct {
	gw *gateway.Client
}

func NewHTTPRepository(gw *gateway.Client) *HTTPRepository {
	return &HTTPRepository{gw: gw}
}

func (r *HTTPRepository) List(ctx context.Context, q pagination.Query) (pagination.Result[Patient], error) {
	var res pagination.Result[Patient]
	if err := r.gw.Get(ctx, basePath, q.WireValues(), &res); err != nil {
		return pagination.Result[Patient]{}, err
	}
	return res, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*Patient, error) {
	var p Patient
	if err := r.gw.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *HTTPRepository) Create(ctx context.Context, in Input) (*Patient, error) {
	var p Patient
	if err := r.gw.Post(ctx, basePath, in.payload(0), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update PUTs to the collection path; the backend reads the id from the body.
func (r *HTTPRepository) Update(ctx context.Context, id int64, in Input) (*Patient, error) {
	var p Patient
	if err := r.gw.Put(ctx, basePath, in.payload(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id))
}
