package image

import (
	"context"

	"github.com/imagems/console/pkg/pagination"
)

// Repository maps medical-image operations onto backend calls. Listing and
// creation are scoped to a patient; single-image reads and updates are not.
type Repository interface {
	ListByPatient(ctx context.Context, patientID int64, q pagination.Query) (pagination.Result[Image], error)
	Get(ctx context.Context, id int64) (*Image, error)
	Create(ctx context.Context, patientID int64, in Input) (*Image, error)
	Update(ctx context.Context, id, patientID int64, in Input) (*Image, error)
	Delete(ctx context.Context, id int64) error
}
