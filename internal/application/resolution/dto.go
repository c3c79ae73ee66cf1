package resolution

import (
	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// ConcernResponse represents a concern in API responses
type ConcernResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TreatmentResponse represents a treatment in API responses
type TreatmentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PackageResponse represents a package with its treatment inlined
type PackageResponse struct {
	ID          uuid.UUID          `json:"id"`
	ClinicName  string             `json:"clinic_name"`
	PackageName string             `json:"package_name"`
	TreatmentID uuid.UUID          `json:"treatment_id"`
	Price       float64            `json:"price"`
	Treatment   *TreatmentResponse `json:"treatment"`
}

// Result is the outcome of resolving a concern. Concern is nil when nothing matched.
type Result struct {
	Concern    *ConcernResponse    `json:"concern"`
	Treatments []TreatmentResponse `json:"treatments"`
	Packages   []PackageResponse   `json:"packages"`
}

// Matched reports whether a concern was found
func (r *Result) Matched() bool {
	return r.Concern != nil
}

// emptyResult is the successful "no match" answer
func emptyResult() *Result {
	return &Result{
		Treatments: []TreatmentResponse{},
		Packages:   []PackageResponse{},
	}
}

// ToTreatmentResponse converts a domain treatment, returning nil for nil
func ToTreatmentResponse(t *catalog.Treatment) *TreatmentResponse {
	if t == nil {
		return nil
	}
	return &TreatmentResponse{ID: t.ID, Name: t.Name}
}

// ToPackageResponse converts a domain package
func ToPackageResponse(p *catalog.Package) PackageResponse {
	return PackageResponse{
		ID:          p.ID,
		ClinicName:  p.ClinicName,
		PackageName: p.PackageName,
		TreatmentID: p.TreatmentID,
		Price:       p.Price.InexactFloat64(),
		Treatment:   ToTreatmentResponse(p.Treatment),
	}
}
