package persistence

import (
	"context"
	"fmt"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPackageRepository implements PackageRepository using GORM
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GormPackageRepository
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// FindByTreatmentIDs finds all packages offering any of the given treatments
func (r *GormPackageRepository) FindByTreatmentIDs(ctx context.Context, treatmentIDs []uuid.UUID) ([]catalog.Package, error) {
	if len(treatmentIDs) == 0 {
		return []catalog.Package{}, nil
	}
	return r.find(ctx, "treatment_id IN ?", treatmentIDs)
}

// FindByIDs finds the packages with the given IDs
func (r *GormPackageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Package, error) {
	if len(ids) == 0 {
		return []catalog.Package{}, nil
	}
	return r.find(ctx, "id IN ?", ids)
}

func (r *GormPackageRepository) find(ctx context.Context, query string, args ...any) ([]catalog.Package, error) {
	var rows []models.PackageModel
	if err := r.db.WithContext(ctx).
		Preload("Treatment").
		Where(query, args...).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find packages: %w", err)
	}

	packages := make([]catalog.Package, len(rows))
	for i := range rows {
		packages[i] = *rows[i].ToDomain()
	}
	return packages, nil
}

// SaveBatch inserts packages in one statement
func (r *GormPackageRepository) SaveBatch(ctx context.Context, packages []*catalog.Package) error {
	if len(packages) == 0 {
		return nil
	}
	rows := make([]*models.PackageModel, len(packages))
	for i, p := range packages {
		rows[i] = models.PackageModelFromDomain(p)
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert packages: %w", err)
	}
	return nil
}

// DeleteAll removes every package
func (r *GormPackageRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, &models.PackageModel{})
}

// Count counts all packages
func (r *GormPackageRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.db, &models.PackageModel{})
}

// Ensure GormPackageRepository implements PackageRepository
var _ catalog.PackageRepository = (*GormPackageRepository)(nil)
