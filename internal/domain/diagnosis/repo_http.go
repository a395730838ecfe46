package diagnosis

import (
	"context"
	"fmt"

	"github.com/imagems/console/internal/gateway"
	"github.com/imagems/console/pkg/pagination"
)

const basePath = "/api/v1/app/diagnoses"

type HTTPRepository struct {
	gw *gateway.Client
}

func NewHTTPRepository(gw *gateway.Client) *HTTPRepository {
	return &HTTPRepository{gw: gw}
}

func (r *HTTPRepository) ListByPatient(ctx context.Context, patientID int64, q pagination.Query) (pagination.Result[Diagnosis], error) {
	var res pagination.Result[Diagnosis]
	path := fmt.Sprintf("%s/patient/%d", basePath, patientID)
	if err := r.gw.Get(ctx, path, q.WireValues(), &res); err != nil {
		return pagination.Result[Diagnosis]{}, err
	}
	return res, nil
}

func (r *HTTPRepository) Get(ctx context.Context, id int64) (*Diagnosis, error) {
	var d Diagnosis
	if err := r.gw.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create POSTs to the patient-scoped path; the patient also rides in the
// body as a nested reference, matching the backend.
func (r *HTTPRepository) Create(ctx context.Context, patientID int64, in Input) (*Diagnosis, error) {
	var d Diagnosis
	path := fmt.Sprintf("%s/patient/%d", basePath, patientID)
	if err := r.gw.Post(ctx, path, in.payload(0, patientID), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *HTTPRepository) Update(ctx context.Context, id, patientID int64, in Input) (*Diagnosis, error) {
	var d Diagnosis
	if err := r.gw.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), in.payload(id, patientID), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *HTTPRepository) Delete(ctx context.Context, id int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id))
}
