package persistence

import (
	"context"
	"fmt"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTreatmentRepository implements TreatmentRepository using GORM
type GormTreatmentRepository struct {
	db *gorm.DB
}

// NewGormTreatmentRepository creates a new GormTreatmentRepository
func NewGormTreatmentRepository(db *gorm.DB) *GormTreatmentRepository {
	return &GormTreatmentRepository{db: db}
}

// SaveBatch inserts treatments in one statement
func (r *GormTreatmentRepository) SaveBatch(ctx context.Context, treatments []*catalog.Treatment) error {
	if len(treatments) == 0 {
		return nil
	}
	rows := make([]*models.TreatmentModel, len(treatments))
	for i, t := range treatments {
		rows[i] = models.TreatmentModelFromDomain(t)
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert treatments: %w", err)
	}
	return nil
}

// DeleteAll removes every treatment
func (r *GormTreatmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, &models.TreatmentModel{})
}

// Count counts all treatments
func (r *GormTreatmentRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.db, &models.TreatmentModel{})
}

// Ensure GormTreatmentRepository implements TreatmentRepository
var _ catalog.TreatmentRepository = (*GormTreatmentRepository)(nil)
