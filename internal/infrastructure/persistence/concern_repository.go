package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormConcernRepository implements ConcernRepository using GORM
type GormConcernRepository struct {
	db *gorm.DB
}

// NewGormConcernRepository creates a new GormConcernRepository
func NewGormConcernRepository(db *gorm.DB) *GormConcernRepository {
	return &GormConcernRepository{db: db}
}

// FindByName finds a concern by exact name
func (r *GormConcernRepository) FindByName(ctx context.Context, name string) (*catalog.Concern, error) {
	var model models.ConcernModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find concern by name: %w", err)
	}
	return model.ToDomain(), nil
}

// SaveBatch inserts concerns in one statement
func (r *GormConcernRepository) SaveBatch(ctx context.Context, concerns []*catalog.Concern) error {
	if len(concerns) == 0 {
		return nil
	}
	rows := make([]*models.ConcernModel, len(concerns))
	for i, c := range concerns {
		rows[i] = models.ConcernModelFromDomain(c)
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("insert concerns: %w", err)
	}
	return nil
}

// DeleteAll removes every concern
func (r *GormConcernRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.db, &models.ConcernModel{})
}

// Count counts all concerns
func (r *GormConcernRepository) Count(ctx context.Context) (int64, error) {
	return countAll(ctx, r.db, &models.ConcernModel{})
}

// deleteAll removes every row of the model's table and returns the number removed
func deleteAll(ctx context.Context, db *gorm.DB, model any) (int64, error) {
	result := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model)
	if result.Error != nil {
		return 0, fmt.Errorf("delete all %T: %w", model, result.Error)
	}
	return result.RowsAffected, nil
}

// countAll counts every row of the model's table
func countAll(ctx context.Context, db *gorm.DB, model any) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %T: %w", model, err)
	}
	return count, nil
}

// Ensure GormConcernRepository implements ConcernRepository
var _ catalog.ConcernRepository = (*GormConcernRepository)(nil)
