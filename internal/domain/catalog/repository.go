package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ConcernRepository defines the interface for concern persistence
type ConcernRepository interface {
	// FindByName finds a concern whose name equals name exactly.
	// Returns shared.ErrNotFound when there is none.
	FindByName(ctx context.Context, name string) (*Concern, error)

	// SaveBatch inserts concerns in one statement
	SaveBatch(ctx context.Context, concerns []*Concern) error

	// DeleteAll removes every concern and returns the number removed
	DeleteAll(ctx context.Context) (int64, error)

	// Count counts all concerns
	Count(ctx context.Context) (int64, error)
}

// TreatmentRepository defines the interface for treatment persistence
type TreatmentRepository interface {
	// SaveBatch inserts treatments in one statement
	SaveBatch(ctx context.Context, treatments []*Treatment) error

	// DeleteAll removes every treatment and returns the number removed
	DeleteAll(ctx context.Context) (int64, error)

	// Count counts all treatments
	Count(ctx context.Context) (int64, error)
}

// ConcernTreatmentRepository defines the interface for concern-treatment link persistence
type ConcernTreatmentRepository interface {
	// FindByConcernID finds all links of a concern in insertion order,
	// each with its Treatment populated when the treatment still exists
	FindByConcernID(ctx context.Context, concernID uuid.UUID) ([]ConcernTreatment, error)

	// SaveBatch inserts links in one statement
	SaveBatch(ctx context.Context, links []*ConcernTreatment) error

	// DeleteAll removes every link and returns the number removed
	DeleteAll(ctx context.Context) (int64, error)

	// Count counts all links
	Count(ctx context.Context) (int64, error)
}

// PackageRepository defines the interface for package persistence
type PackageRepository interface {
	// FindByTreatmentIDs finds all packages offering any of the given treatments,
	// in insertion order, each with its Treatment populated
	FindByTreatmentIDs(ctx context.Context, treatmentIDs []uuid.UUID) ([]Package, error)

	// FindByIDs finds the packages with the given IDs, each with its Treatment populated.
	// IDs with no matching package are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Package, error)

	// SaveBatch inserts packages in one statement
	SaveBatch(ctx context.Context, packages []*Package) error

	// DeleteAll removes every package and returns the number removed
	DeleteAll(ctx context.Context) (int64, error)

	// Count counts all packages
	Count(ctx context.Context) (int64, error)
}
