package models

import "github.com/clinicfinder/backend/internal/domain/enquiry"

// EnquiryModel is the persistence model for the Enquiry entity.
// package_id is free text with no foreign key, so dangling references are stored as given.
type EnquiryModel struct {
	BaseModel
	PackageID string `gorm:"type:text;not null;index"`
	UserName  string `gorm:"type:text;not null"`
	UserEmail string `gorm:"type:text;not null"`
	Message   string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (EnquiryModel) TableName() string {
	return "enquiries"
}

// ToDomain converts the persistence model to a domain Enquiry entity.
func (m *EnquiryModel) ToDomain() *enquiry.Enquiry {
	return &enquiry.Enquiry{
		BaseEntity: m.BaseModel.ToDomain(),
		PackageID:  m.PackageID,
		UserName:   m.UserName,
		UserEmail:  m.UserEmail,
		Message:    m.Message,
	}
}

// EnquiryModelFromDomain creates a new persistence model from a domain Enquiry.
func EnquiryModelFromDomain(e *enquiry.Enquiry) *EnquiryModel {
	m := &EnquiryModel{
		PackageID: e.PackageID,
		UserName:  e.UserName,
		UserEmail: e.UserEmail,
		Message:   e.Message,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
