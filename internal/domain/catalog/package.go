package catalog

import (
	"strings"

	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Package is a clinic's priced offering of exactly one treatment.
// Price is expected to be non-negative but that is not enforced.
type Package struct {
	shared.BaseEntity
	ClinicName  string
	PackageName string
	TreatmentID uuid.UUID
	Price       decimal.Decimal

	// Treatment is the dereferenced treatment, populated by repositories that load it
	Treatment *Treatment
}

// NewPackage creates a new package offering the given treatment
func NewPackage(clinicName, packageName string, treatment *Treatment, price decimal.Decimal) (*Package, error) {
	if strings.TrimSpace(clinicName) == "" {
		return nil, shared.NewDomainError("INVALID_PACKAGE", "Clinic name cannot be empty")
	}
	if strings.TrimSpace(packageName) == "" {
		return nil, shared.NewDomainError("INVALID_PACKAGE", "Package name cannot be empty")
	}
	if treatment == nil || treatment.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PACKAGE", "Treatment is required")
	}
	return &Package{
		BaseEntity:  shared.NewBaseEntity(),
		ClinicName:  clinicName,
		PackageName: packageName,
		TreatmentID: treatment.ID,
		Price:       price,
		Treatment:   treatment,
	}, nil
}
