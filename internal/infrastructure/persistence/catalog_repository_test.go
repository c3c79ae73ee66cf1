package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type catalogFixture struct {
	acne, chin                     *catalog.Concern
	microneedling, peel, hifu, kyb *catalog.Treatment
	hifuSculpt, peelClassic, micro *catalog.Package
}

// seedCatalogFixture writes a small catalog through the repositories under test
func seedCatalogFixture(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()
	ctx := context.Background()
	var f catalogFixture
	var err error

	f.acne, err = catalog.NewConcern("acne scars")
	require.NoError(t, err)
	f.chin, err = catalog.NewConcern("double chin")
	require.NoError(t, err)
	require.NoError(t, NewGormConcernRepository(db).SaveBatch(ctx, []*catalog.Concern{f.acne, f.chin}))

	f.microneedling, _ = catalog.NewTreatment("Microneedling")
	f.peel, _ = catalog.NewTreatment("Chemical Peel")
	f.hifu, _ = catalog.NewTreatment("HIFU")
	f.kyb, _ = catalog.NewTreatment("Kybella")
	require.NoError(t, NewGormTreatmentRepository(db).SaveBatch(ctx,
		[]*catalog.Treatment{f.microneedling, f.peel, f.hifu, f.kyb}))

	var links []*catalog.ConcernTreatment
	for _, pair := range []struct {
		c *catalog.Concern
		t *catalog.Treatment
	}{{f.acne, f.microneedling}, {f.acne, f.peel}, {f.chin, f.hifu}, {f.chin, f.kyb}} {
		link, err := catalog.NewConcernTreatment(pair.c, pair.t)
		require.NoError(t, err)
		links = append(links, link)
	}
	require.NoError(t, NewGormConcernTreatmentRepository(db).SaveBatch(ctx, links))

	f.hifuSculpt, _ = catalog.NewPackage("Aesthetic Center", "HIFU Chin Sculpt", f.hifu, decimal.NewFromInt(7000))
	f.micro, _ = catalog.NewPackage("Skin Care Hub", "Advanced Microneedling", f.microneedling, decimal.NewFromInt(5500))
	f.peelClassic, _ = catalog.NewPackage("Glow Clinic", "Chemical Peel Classic", f.peel, decimal.NewFromInt(4000))
	require.NoError(t, NewGormPackageRepository(db).SaveBatch(ctx,
		[]*catalog.Package{f.hifuSculpt, f.micro, f.peelClassic}))

	return f
}

func TestGormConcernTreatmentRepository_FindByConcernID(t *testing.T) {
	db := setupCatalogTestDB(t)
	f := seedCatalogFixture(t, db)
	repo := NewGormConcernTreatmentRepository(db)

	t.Run("returns links in insertion order with treatments", func(t *testing.T) {
		links, err := repo.FindByConcernID(context.Background(), f.acne.ID)
		require.NoError(t, err)
		require.Len(t, links, 2)

		require.NotNil(t, links[0].Treatment)
		require.NotNil(t, links[1].Treatment)
		assert.Equal(t, "Microneedling", links[0].Treatment.Name)
		assert.Equal(t, "Chemical Peel", links[1].Treatment.Name)
	})

	t.Run("returns duplicate links as stored", func(t *testing.T) {
		dup, err := catalog.NewConcernTreatment(f.chin, f.hifu)
		require.NoError(t, err)
		require.NoError(t, repo.SaveBatch(context.Background(), []*catalog.ConcernTreatment{dup}))

		links, err := repo.FindByConcernID(context.Background(), f.chin.ID)
		require.NoError(t, err)
		assert.Len(t, links, 3)
	})

	t.Run("returns empty slice for concern without links", func(t *testing.T) {
		links, err := repo.FindByConcernID(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestGormPackageRepository_FindByTreatmentIDs(t *testing.T) {
	db := setupCatalogTestDB(t)
	f := seedCatalogFixture(t, db)
	repo := NewGormPackageRepository(db)

	t.Run("returns only packages of the given treatments", func(t *testing.T) {
		pkgs, err := repo.FindByTreatmentIDs(context.Background(), []uuid.UUID{f.hifu.ID, f.kyb.ID})
		require.NoError(t, err)
		require.Len(t, pkgs, 1)

		assert.Equal(t, "HIFU Chin Sculpt", pkgs[0].PackageName)
		assert.True(t, pkgs[0].Price.Equal(decimal.NewFromInt(7000)))
		require.NotNil(t, pkgs[0].Treatment)
		assert.Equal(t, "HIFU", pkgs[0].Treatment.Name)
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		pkgs, err := repo.FindByTreatmentIDs(context.Background(), []uuid.UUID{f.peel.ID, f.microneedling.ID})
		require.NoError(t, err)
		require.Len(t, pkgs, 2)
		assert.Equal(t, f.micro.ID, pkgs[0].ID)
		assert.Equal(t, f.peelClassic.ID, pkgs[1].ID)
	})

	t.Run("no treatments means no query", func(t *testing.T) {
		mockGorm, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		pkgs, err := NewGormPackageRepository(mockGorm).FindByTreatmentIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, pkgs)
		assert.Empty(t, pkgs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPackageRepository_FindByIDs(t *testing.T) {
	db := setupCatalogTestDB(t)
	f := seedCatalogFixture(t, db)
	repo := NewGormPackageRepository(db)

	pkgs, err := repo.FindByIDs(context.Background(), []uuid.UUID{f.peelClassic.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, f.peelClassic.ID, pkgs[0].ID)
	require.NotNil(t, pkgs[0].Treatment)
	assert.Equal(t, "Chemical Peel", pkgs[0].Treatment.Name)
}

func TestGormPackageRepository_FindByTreatmentIDs_SQL(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormPackageRepository(db)

	treatmentID := uuid.New()
	packageID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "packages" WHERE treatment_id IN \(\$1\) ORDER BY created_at ASC, id ASC`).
		WithArgs(treatmentID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "clinic_name", "package_name", "treatment_id", "price", "created_at"}).
			AddRow(packageID, "Aesthetic Center", "HIFU Chin Sculpt", treatmentID, "7000", time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "treatments" WHERE "treatments"."id" .*`).
		WithArgs(treatmentID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(treatmentID, "HIFU", time.Now()))

	pkgs, err := repo.FindByTreatmentIDs(context.Background(), []uuid.UUID{treatmentID})

	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "HIFU", pkgs[0].Treatment.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositories_DeleteAllAndCount(t *testing.T) {
	db := setupCatalogTestDB(t)
	seedCatalogFixture(t, db)
	ctx := context.Background()

	mappings := NewGormConcernTreatmentRepository(db)
	packages := NewGormPackageRepository(db)
	concerns := NewGormConcernRepository(db)
	treatments := NewGormTreatmentRepository(db)

	n, err := mappings.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	removed, err := mappings.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	removed, err = packages.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	removed, err = concerns.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = treatments.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	n, err = treatments.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
