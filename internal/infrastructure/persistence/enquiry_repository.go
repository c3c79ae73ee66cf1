package persistence

import (
	"context"
	"fmt"

	"github.com/clinicfinder/backend/internal/domain/enquiry"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEnquiryRepository implements enquiry.Repository using GORM
type GormEnquiryRepository struct {
	db *gorm.DB
}

// NewGormEnquiryRepository creates a new GormEnquiryRepository
func NewGormEnquiryRepository(db *gorm.DB) *GormEnquiryRepository {
	return &GormEnquiryRepository{db: db}
}

// Save inserts a new enquiry
func (r *GormEnquiryRepository) Save(ctx context.Context, e *enquiry.Enquiry) error {
	if err := r.db.WithContext(ctx).Create(models.EnquiryModelFromDomain(e)).Error; err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

// FindAll returns every enquiry ordered by creation time
func (r *GormEnquiryRepository) FindAll(ctx context.Context) ([]enquiry.Enquiry, error) {
	var rows []models.EnquiryModel
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find enquiries: %w", err)
	}

	enquiries := make([]enquiry.Enquiry, len(rows))
	for i := range rows {
		enquiries[i] = *rows[i].ToDomain()
	}
	return enquiries, nil
}

// Count counts all enquiries
func (r *GormEnquiryRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.db, &models.EnquiryModel{})
}

// Ensure GormEnquiryRepository implements enquiry.Repository
var _ enquiry.Repository = (*GormEnquiryRepository)(nil)
