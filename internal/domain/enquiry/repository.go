package enquiry

import "context"

// Repository defines the interface for enquiry persistence
type Repository interface {
	// Save inserts a new enquiry
	Save(ctx context.Context, e *Enquiry) error

	// FindAll returns every enquiry ordered by creation time
	FindAll(ctx context.Context) ([]Enquiry, error)

	// Count counts all enquiries
	Count(ctx context.Context) (int64, error)
}
