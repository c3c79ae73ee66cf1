package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/domain/enquiry"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepositories_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()

	concerns := persistence.NewGormConcernRepository(tdb.DB)
	treatments := persistence.NewGormTreatmentRepository(tdb.DB)
	links := persistence.NewGormConcernTreatmentRepository(tdb.DB)
	packages := persistence.NewGormPackageRepository(tdb.DB)

	concern, err := catalog.NewConcern("acne scars")
	require.NoError(t, err)
	peel, err := catalog.NewTreatment("Chemical Peel")
	require.NoError(t, err)
	laser, err := catalog.NewTreatment("Laser Resurfacing")
	require.NoError(t, err)

	require.NoError(t, concerns.SaveBatch(ctx, []*catalog.Concern{concern}))
	require.NoError(t, treatments.SaveBatch(ctx, []*catalog.Treatment{peel, laser}))

	// the same pair twice is allowed by the schema
	l1, err := catalog.NewConcernTreatment(concern, laser)
	require.NoError(t, err)
	l2, err := catalog.NewConcernTreatment(concern, peel)
	require.NoError(t, err)
	l3, err := catalog.NewConcernTreatment(concern, peel)
	require.NoError(t, err)
	require.NoError(t, links.SaveBatch(ctx, []*catalog.ConcernTreatment{l1, l2, l3}))

	pkg, err := catalog.NewPackage("Glow Clinic", "Chemical Peel Classic", peel, decimal.RequireFromString("4000.50"))
	require.NoError(t, err)
	require.NoError(t, packages.SaveBatch(ctx, []*catalog.Package{pkg}))

	t.Run("name lookup is exact", func(t *testing.T) {
		found, err := concerns.FindByName(ctx, "acne scars")
		require.NoError(t, err)
		assert.Equal(t, concern.ID, found.ID)

		_, err = concerns.FindByName(ctx, "Acne Scars")
		assert.Error(t, err)
	})

	t.Run("links keep insertion order and duplicates", func(t *testing.T) {
		got, err := links.FindByConcernID(ctx, concern.ID)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, laser.ID, got[0].TreatmentID)
		assert.Equal(t, peel.ID, got[1].TreatmentID)
		assert.Equal(t, peel.ID, got[2].TreatmentID)
	})

	t.Run("price keeps its decimals", func(t *testing.T) {
		got, err := packages.FindByTreatmentIDs(ctx, []uuid.UUID{peel.ID, laser.ID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, decimal.RequireFromString("4000.50").Equal(got[0].Price))
	})

	t.Run("delete all cascades", func(t *testing.T) {
		n, err := treatments.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		count, err := links.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
		count, err = packages.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestEnquiryRepository_Postgres(t *testing.T) {
	tdb := NewTestDB(t)
	ctx := context.Background()
	repo := persistence.NewGormEnquiryRepository(tdb.DB)

	e, err := enquiry.NewEnquiry("no-such-package", "Jo", "jo@x.com", "", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, e))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "no-such-package", all[0].PackageID)
	assert.Empty(t, all[0].Message)

	err = tdb.DB.Exec(
		`INSERT INTO enquiries (id, package_id, user_name, user_email, message) VALUES (?, 'p', 'Jo', 'jo@x.com', ?)`,
		uuid.New(), strings.Repeat("x", 501),
	).Error
	assert.Error(t, err, "the message length check constraint rejects 501 characters")
}
