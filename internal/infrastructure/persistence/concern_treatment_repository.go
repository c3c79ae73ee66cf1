package persistence

import (
	"context"
	"fmt"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConcernTreatmentRepository implements ConcernTreatmentRepository using GORM
type GormConcernTreatmentRepository struct {
	db *gorm.DB
}

// NewGormConcernTreatmentRepository creates a new GormConcernTreatmentRepository
func NewGormConcernTreatmentRepository(db *gorm.DB) *GormConcernTreatmentRepository {
	return &GormConcernTreatmentRepository{db: db}
}

// FindByConcernID finds all links of a concern with their treatments preloaded
func (r *GormConcernTreatmentRepository) FindByConcernID(ctx context.Context, concernID uuid.UUID) ([]catalog.ConcernTreatment, error) {
	var rows []models.ConcernTreatmentModel
	if err := r.db.WithContext(ctx).
		Preload("Treatment").
		Where("concern_id = ?", concernID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find concern treatments: %w", err)
	}

	links := make([]catalog.ConcernTreatment, len(rows))
	for i := range rows {
		links[i] = *rows[i].ToDomain()
	}
	return links, nil
}

// SaveBatch inserts links in one statement
func (r *GormConcernTreatmentRepository) SaveBatch(ctx context.Context, links []*catalog.ConcernTreatment) error {
	if len(links) == 0 {
		return nil
	}
	rows := make([]*models.ConcernTreatmentModel, len(links))
	for i, l := range links {
		rows[i] = models.ConcernTreatmentModelFromDomain(l)
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert concern treatments: %w", err)
	}
	return nil
}

// DeleteAll removes every link
func (r *GormConcernTreatmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, &models.ConcernTreatmentModel{})
}

// Count counts all links
func (r *GormConcernTreatmentRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.db, &models.ConcernTreatmentModel{})
}

// Ensure GormConcernTreatmentRepository implements ConcernTreatmentRepository
var _ catalog.ConcernTreatmentRepository = (*GormConcernTreatmentRepository)(nil)
