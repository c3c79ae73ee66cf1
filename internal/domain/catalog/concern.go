package catalog

import (
	"strings"

	"github.com/clinicfinder/backend/internal/domain/shared"
)

// MaxNameLength is the maximum length of concern and treatment names
const MaxNameLength = 200

// Concern is a named condition a user searches for, e.g. "acne scars".
// The name is kept exactly as written; lookups compare it verbatim.
type Concern struct {
	shared.BaseEntity
	Name string
}

// NewConcern creates a new concern
func NewConcern(name string) (*Concern, error) {
	if err := validateName("Concern", name); err != nil {
		return nil, err
	}
	return &Concern{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// validateName checks that a catalog name is present and of bounded length
func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", kind+" name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return shared.NewDomainError("INVALID_NAME", kind+" name cannot exceed 200 characters")
	}
	return nil
}
