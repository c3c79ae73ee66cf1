package models

import (
	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConcernModel is the persistence model for the Concern entity.
type ConcernModel struct {
	BaseModel
	Name string `gorm:"type:varchar(200);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (ConcernModel) TableName() string {
	return "concerns"
}

// ToDomain converts the persistence model to a domain Concern entity.
func (m *ConcernModel) ToDomain() *catalog.Concern {
	return &catalog.Concern{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// ConcernModelFromDomain creates a new persistence model from a domain Concern entity.
func ConcernModelFromDomain(c *catalog.Concern) *ConcernModel {
	m := &ConcernModel{Name: c.Name}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// TreatmentModel is the persistence model for the Treatment entity.
type TreatmentModel struct {
	BaseModel
	Name string `gorm:"type:varchar(200);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (TreatmentModel) TableName() string {
	return "treatments"
}

// ToDomain converts the persistence model to a domain Treatment entity.
func (m *TreatmentModel) ToDomain() *catalog.Treatment {
	return &catalog.Treatment{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// TreatmentModelFromDomain creates a new persistence model from a domain Treatment entity.
func TreatmentModelFromDomain(t *catalog.Treatment) *TreatmentModel {
	m := &TreatmentModel{Name: t.Name}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// ConcernTreatmentModel is the persistence model for the concern to treatment link.
// There is deliberately no unique index on (concern_id, treatment_id).
type ConcernTreatmentModel struct {
	BaseModel
	ConcernID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	TreatmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Treatment   *TreatmentModel `gorm:"foreignKey:TreatmentID"`
}

// TableName returns the table name for GORM
func (ConcernTreatmentModel) TableName() string {
	return "concern_treatments"
}

// ToDomain converts the persistence model to a domain ConcernTreatment entity.
func (m *ConcernTreatmentModel) ToDomain() *catalog.ConcernTreatment {
	link := &catalog.ConcernTreatment{
		BaseEntity:  m.BaseModel.ToDomain(),
		ConcernID:   m.ConcernID,
		TreatmentID: m.TreatmentID,
	}
	if m.Treatment != nil {
		link.Treatment = m.Treatment.ToDomain()
	}
	return link
}

// ConcernTreatmentModelFromDomain creates a new persistence model from a domain ConcernTreatment.
// The Treatment association is left empty so inserts never touch the treatments table.
func ConcernTreatmentModelFromDomain(l *catalog.ConcernTreatment) *ConcernTreatmentModel {
	m := &ConcernTreatmentModel{
		ConcernID:   l.ConcernID,
		TreatmentID: l.TreatmentID,
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m
}

// PackageModel is the persistence model for the Package entity.
type PackageModel struct {
	BaseModel
	ClinicName  string          `gorm:"type:varchar(200);not null"`
	PackageName string          `gorm:"type:varchar(200);not null"`
	TreatmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Treatment   *TreatmentModel `gorm:"foreignKey:TreatmentID"`
}

// TableName returns the table name for GORM
func (PackageModel) TableName() string {
	return "packages"
}

// ToDomain converts the persistence model to a domain Package entity.
func (m *PackageModel) ToDomain() *catalog.Package {
	pkg := &catalog.Package{
		BaseEntity:  m.BaseModel.ToDomain(),
		ClinicName:  m.ClinicName,
		PackageName: m.PackageName,
		TreatmentID: m.TreatmentID,
		Price:       m.Price,
	}
	if m.Treatment != nil {
		pkg.Treatment = m.Treatment.ToDomain()
	}
	return pkg
}

// PackageModelFromDomain creates a new persistence model from a domain Package.
// The Treatment association is left empty so inserts never touch the treatments table.
func PackageModelFromDomain(p *catalog.Package) *PackageModel {
	m := &PackageModel{
		ClinicName:  p.ClinicName,
		PackageName: p.PackageName,
		TreatmentID: p.TreatmentID,
		Price:       p.Price,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
