// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free of ORM concerns.
//
// Structure:
//   - base.go: BaseModel shared by every table
//   - catalog.go: concerns, treatments, concern_treatments, packages
//   - enquiry.go: enquiries
package models
