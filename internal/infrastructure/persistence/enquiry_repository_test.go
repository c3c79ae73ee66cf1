package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/clinicfinder/backend/internal/domain/enquiry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormEnquiryRepository_Save(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormEnquiryRepository(db)

	e, err := enquiry.NewEnquiry(uuid.NewString(), "Jo", "jo@x.com", "", time.Now())
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "enquiries"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), e.PackageID, "Jo", "jo@x.com", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormEnquiryRepository_FindAll(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormEnquiryRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	second, err := enquiry.NewEnquiry("pkg-2", "Sam", "sam@example.com", "Is parking available?", base.Add(time.Minute))
	require.NoError(t, err)
	first, err := enquiry.NewEnquiry("pkg-1", "Jo", "jo@x.com", "", base)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, "Is parking available?", all[1].Message)
	assert.Empty(t, all[0].Message)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestGormEnquiryRepository_FindAll_Empty(t *testing.T) {
	repo := NewGormEnquiryRepository(setupCatalogTestDB(t))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
