package reference

import "context"

// Repository serves the console's lookup lists. Each call maps to exactly one
// backend request; nothing is cached.
type Repository interface {
	DiseaseTypes(ctx context.Context) ([]Item, error)
	ImageTypes(ctx context.Context) ([]Item, error)
	UserRoles(ctx context.Context) ([]Item, error)
}
