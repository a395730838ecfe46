package reference

import (
	"context"

	"github.com/imagems/console/internal/gateway"
)

type HTTPRepository struct {
	gw *gateway.Client
}

func NewHTTPRepository(gw *gateway.Client) *HTTPRepository {
	return &HTTPRepository{gw: gw}
}

func (r *HTTPRepository) DiseaseTypes(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := r.gw.Get(ctx, "/api/v1/app/disease-types", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) ImageTypes(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := r.gw.Get(ctx, "/api/v1/app/image-types", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *HTTPRepository) UserRoles(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := r.gw.Get(ctx, "/api/v1/app/user-roles", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
