package catalog

import "github.com/clinicfinder/backend/internal/domain/shared"

// Treatment is a named procedure that addresses one or more concerns
type Treatment struct {
	shared.BaseEntity
	Name string
}

// NewTreatment creates a new treatment
func NewTreatment(name string) (*Treatment, error) {
	if err := validateName("Treatment", name); err != nil {
		return nil, err
	}
	return &Treatment{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
