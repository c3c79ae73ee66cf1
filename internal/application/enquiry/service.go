// Package enquiry handles enquiry submission and the admin listing.
package enquiry

import (
	"context"
	"time"

	"github.com/clinicfinder/backend/internal/application/resolution"
	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/domain/enquiry"
	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/clinicfinder/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const idempotencyKeyPrefix = "enquiry:"

// Recorder receives enquiry counts for metrics
type Recorder interface {
	RecordEnquiryCreated()
}

type nopRecorder struct{}

func (nopRecorder) RecordEnquiryCreated() {}

// Service handles enquiry business operations
type Service struct {
	enquiries   enquiry.Repository
	packages    catalog.PackageRepository
	publisher   shared.EventPublisher
	idempotency shared.IdempotencyStore
	idemConfig  shared.IdempotencyConfig
	recorder    Recorder
	now         func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithEventPublisher publishes enquiry.created after each successful create
func WithEventPublisher(p shared.EventPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithIdempotency honours Idempotency-Key values using store
func WithIdempotency(store shared.IdempotencyStore, cfg shared.IdempotencyConfig) Option {
	return func(s *Service) {
		s.idempotency = store
		s.idemConfig = cfg
	}
}

// WithRecorder reports created enquiries to r
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithClock overrides the server clock
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new enquiry Service
func NewService(enquiries enquiry.Repository, packages catalog.PackageRepository, opts ...Option) *Service {
	s := &Service{
		enquiries: enquiries,
		packages:  packages,
		recorder:  nopRecorder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates and stores a new enquiry. The package ID is not checked against the catalog.
func (s *Service) Create(ctx context.Context, req CreateEnquiryRequest) (*EnquiryResponse, error) {
	e, err := enquiry.NewEnquiry(req.PackageID, req.UserName, req.UserEmail, req.Message, s.now().UTC())
	if err != nil {
		return nil, err
	}

	key, err := s.claimKey(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	if err := s.enquiries.Save(ctx, e); err != nil {
		s.releaseKey(ctx, key)
		return nil, err
	}
	s.recorder.RecordEnquiryCreated()

	log := logger.L(ctx).With(zap.String("enquiry_id", e.ID.String()), zap.String("package_id", e.PackageID))
	log.Info("enquiry created")

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, e.CreatedEvent()); err != nil {
			log.Warn("failed to publish enquiry event", zap.Error(err))
		}
	}

	resp := ToEnquiryResponse(e)
	return &resp, nil
}

// claimKey marks the idempotency key as used. It returns the namespaced key
// when one was claimed. Store failures let the request through.
func (s *Service) claimKey(ctx context.Context, raw string) (string, error) {
	if raw == "" || s.idempotency == nil || !s.idemConfig.Enabled {
		return "", nil
	}
	key := idempotencyKeyPrefix + raw
	isNew, err := s.idempotency.MarkProcessed(ctx, key, s.idemConfig.TTL)
	if err != nil {
		logger.L(ctx).Warn("idempotency check failed, accepting request",
			zap.String("idempotency_key", raw), zap.Error(err))
		return "", nil
	}
	if !isNew {
		return "", shared.ErrDuplicateRequest
	}
	return key, nil
}

func (s *Service) releaseKey(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.idempotency.Forget(ctx, key); err != nil {
		logger.L(ctx).Warn("failed to release idempotency key", zap.String("key", key), zap.Error(err))
	}
}

// List returns every enquiry with its package resolved inline
func (s *Service) List(ctx context.Context) ([]EnquiryListItem, error) {
	all, err := s.enquiries.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(all))
	seen := make(map[uuid.UUID]struct{}, len(all))
	for i := range all {
		if id, ok := all[i].PackageUUID(); ok {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	packages, err := s.packages.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Package, len(packages))
	for i := range packages {
		byID[packages[i].ID] = &packages[i]
	}

	items := make([]EnquiryListItem, len(all))
	for i := range all {
		items[i] = EnquiryListItem{EnquiryResponse: ToEnquiryResponse(&all[i])}
		if id, ok := all[i].PackageUUID(); ok {
			if p, found := byID[id]; found {
				resp := resolution.ToPackageResponse(p)
				items[i].Package = &resp
			}
		}
	}
	return items, nil
}
