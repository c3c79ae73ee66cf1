package catalog

import (
	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ConcernTreatment links a concern to a treatment.
// The same pair may be linked more than once; nothing deduplicates the links.
type ConcernTreatment struct {
	shared.BaseEntity
	ConcernID   uuid.UUID
	TreatmentID uuid.UUID

	// Treatment is the dereferenced treatment, populated by repositories that load it
	Treatment *Treatment
}

// NewConcernTreatment links a concern to a treatment
func NewConcernTreatment(concern *Concern, treatment *Treatment) (*ConcernTreatment, error) {
	if concern == nil || concern.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MAPPING", "Concern is required")
	}
	if treatment == nil || treatment.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MAPPING", "Treatment is required")
	}
	return &ConcernTreatment{
		BaseEntity:  shared.NewBaseEntity(),
		ConcernID:   concern.ID,
		TreatmentID: treatment.ID,
		Treatment:   treatment,
	}, nil
}
