package diagnosis

import (
	"context"

	"github.com/imagems/console/pkg/pagination"
)

// Repository maps diagnosis operations onto backend calls. Listing and
// creation are scoped to a patient.
type Repository interface {
	ListByPatient(ctx context.Context, patientID int64, q pagination.Query) (pagination.Result[Diagnosis], error)
	Get(ctx context.Context, id int64) (*Diagnosis, error)
	Create(ctx context.Context, patientID int64, in Input) (*Diagnosis, error)
	Update(ctx context.Context, id, patientID int64, in Input) (*Diagnosis, error)
	Delete(ctx context.Context, id int64) error
}
