package resolution

import (
	"context"
	"errors"
	"testing"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConcernRepository struct {
	mock.Mock
}

func (m *MockConcernRepository) FindByName(ctx context.Context, name string) (*catalog.Concern, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Concern), args.Error(1)
}

func (m *MockConcernRepository) SaveBatch(ctx context.Context, concerns []*catalog.Concern) error {
	return m.Called(ctx, concerns).Error(0)
}

func (m *MockConcernRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConcernRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockConcernTreatmentRepository struct {
	mock.Mock
}

func (m *MockConcernTreatmentRepository) FindByConcernID(ctx context.Context, concernID uuid.UUID) ([]catalog.ConcernTreatment, error) {
	args := m.Called(ctx, concernID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ConcernTreatment), args.Error(1)
}

func (m *MockConcernTreatmentRepository) SaveBatch(ctx context.Context, links []*catalog.ConcernTreatment) error {
	return m.Called(ctx, links).Error(0)
}

func (m *MockConcernTreatmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConcernTreatmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindByTreatmentIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Package, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Package, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Package), args.Error(1)
}

func (m *MockPackageRepository) SaveBatch(ctx context.Context, packages []*catalog.Package) error {
	return m.Called(ctx, packages).Error(0)
}

func (m *MockPackageRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPackageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type recordingRecorder struct {
	outcomes []string
}

func (r *recordingRecorder) RecordSearch(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func newTestService() (*Service, *MockConcernRepository, *MockConcernTreatmentRepository, *MockPackageRepository, *recordingRecorder) {
	concerns := new(MockConcernRepository)
	links := new(MockConcernTreatmentRepository)
	packages := new(MockPackageRepository)
	rec := &recordingRecorder{}
	return NewService(concerns, links, packages, WithRecorder(rec)), concerns, links, packages, rec
}

func mustTreatment(t *testing.T, name string) *catalog.Treatment {
	tr, err := catalog.NewTreatment(name)
	require.NoError(t, err)
	return tr
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query is rejected before any lookup", func(t *testing.T) {
		svc, concerns, _, _, rec := newTestService()

		for _, q := range []string{"", "   ", "\t"} {
			result, err := svc.Resolve(ctx, q)
			assert.Nil(t, result)
			assert.Equal(t, ErrConcernRequired, err)
		}
		concerns.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
		assert.Equal(t, []string{OutcomeRejected, OutcomeRejected, OutcomeRejected}, rec.outcomes)
	})

	t.Run("unknown concern yields empty success", func(t *testing.T) {
		svc, concerns, links, _, rec := newTestService()
		concerns.On("FindByName", ctx, "hair loss").Return(nil, shared.ErrNotFound)

		result, err := svc.Resolve(ctx, "Hair Loss")

		require.NoError(t, err)
		assert.Nil(t, result.Concern)
		assert.False(t, result.Matched())
		assert.NotNil(t, result.Treatments)
		assert.Empty(t, result.Treatments)
		assert.NotNil(t, result.Packages)
		assert.Empty(t, result.Packages)
		links.AssertNotCalled(t, "FindByConcernID", mock.Anything, mock.Anything)
		assert.Equal(t, []string{OutcomeNoMatch}, rec.outcomes)
	})

	t.Run("query is lower-cased but not trimmed", func(t *testing.T) {
		svc, concerns, _, _, _ := newTestService()
		concerns.On("FindByName", ctx, " double chin").Return(nil, shared.ErrNotFound)

		_, err := svc.Resolve(ctx, " DOUBLE Chin")
		require.NoError(t, err)
		concerns.AssertExpectations(t)
	})

	t.Run("resolves treatments and packages", func(t *testing.T) {
		svc, concerns, links, packages, rec := newTestService()

		concern, _ := catalog.NewConcern("double chin")
		hifu := mustTreatment(t, "HIFU")
		kybella := mustTreatment(t, "Kybella")
		l1, _ := catalog.NewConcernTreatment(concern, hifu)
		l2, _ := catalog.NewConcernTreatment(concern, kybella)
		l1.Treatment, l2.Treatment = hifu, kybella
		pkg, _ := catalog.NewPackage("Aesthetic Center", "HIFU Chin Sculpt", hifu, decimal.NewFromInt(7000))

		concerns.On("FindByName", ctx, "double chin").Return(concern, nil)
		links.On("FindByConcernID", ctx, concern.ID).Return([]catalog.ConcernTreatment{*l1, *l2}, nil)
		packages.On("FindByTreatmentIDs", ctx, []uuid.UUID{hifu.ID, kybella.ID}).Return([]catalog.Package{*pkg}, nil)

		result, err := svc.Resolve(ctx, "double chin")

		require.NoError(t, err)
		require.NotNil(t, result.Concern)
		assert.Equal(t, "double chin", result.Concern.Name)
		require.Len(t, result.Treatments, 2)
		assert.Equal(t, "HIFU", result.Treatments[0].Name)
		assert.Equal(t, "Kybella", result.Treatments[1].Name)
		require.Len(t, result.Packages, 1)
		assert.Equal(t, "HIFU Chin Sculpt", result.Packages[0].PackageName)
		assert.Equal(t, 7000.0, result.Packages[0].Price)
		require.NotNil(t, result.Packages[0].Treatment)
		assert.Equal(t, hifu.ID, result.Packages[0].Treatment.ID)
		assert.Equal(t, []string{OutcomeMatched}, rec.outcomes)
	})

	t.Run("duplicate links repeat the treatment but query it once", func(t *testing.T) {
		svc, concerns, links, packages, _ := newTestService()

		concern, _ := catalog.NewConcern("acne scars")
		peel := mustTreatment(t, "Chemical Peel")
		l1, _ := catalog.NewConcernTreatment(concern, peel)
		l2, _ := catalog.NewConcernTreatment(concern, peel)
		l1.Treatment, l2.Treatment = peel, peel

		concerns.On("FindByName", ctx, "acne scars").Return(concern, nil)
		links.On("FindByConcernID", ctx, concern.ID).Return([]catalog.ConcernTreatment{*l1, *l2}, nil)
		packages.On("FindByTreatmentIDs", ctx, []uuid.UUID{peel.ID}).Return([]catalog.Package{}, nil)

		result, err := svc.Resolve(ctx, "acne scars")

		require.NoError(t, err)
		assert.Len(t, result.Treatments, 2)
		assert.Empty(t, result.Packages)
		packages.AssertExpectations(t)
	})

	t.Run("store failures are returned", func(t *testing.T) {
		svc, concerns, _, _, _ := newTestService()
		dbErr := errors.New("connection refused")
		concerns.On("FindByName", ctx, "acne scars").Return(nil, dbErr)

		_, err := svc.Resolve(ctx, "acne scars")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("package lookup failure is returned", func(t *testing.T) {
		svc, concerns, links, packages, _ := newTestService()
		concern, _ := catalog.NewConcern("dark circles")
		dbErr := errors.New("timeout")

		concerns.On("FindByName", ctx, "dark circles").Return(concern, nil)
		links.On("FindByConcernID", ctx, concern.ID).Return([]catalog.ConcernTreatment{}, nil)
		packages.On("FindByTreatmentIDs", ctx, []uuid.UUID{}).Return(nil, dbErr)

		_, err := svc.Resolve(ctx, "dark circles")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "acne scars", NormalizeQuery("ACNE Scars"))
	assert.Equal(t, "double chin ", NormalizeQuery("Double Chin "))
}
