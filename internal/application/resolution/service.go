// Package resolution maps a concern name to its treatments and the packages offering them.
package resolution

import (
	"context"
	"errors"
	"strings"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/clinicfinder/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrConcernRequired is returned for an empty or blank query
var ErrConcernRequired = shared.NewDomainError("BAD_REQUEST", "Concern required")

// Search outcomes reported to the Recorder
const (
	OutcomeMatched  = "matched"
	OutcomeNoMatch  = "no_match"
	OutcomeRejected = "rejected"
)

// Recorder receives search outcomes for metrics
type Recorder interface {
	RecordSearch(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordSearch(string) {}

// Service resolves concerns into treatments and packages
type Service struct {
	concerns catalog.ConcernRepository
	links    catalog.ConcernTreatmentRepository
	packages catalog.PackageRepository
	recorder Recorder
}

// Option configures a Service
type Option func(*Service)

// WithRecorder reports search outcomes to r
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// NewService creates a new resolution Service
func NewService(
	concerns catalog.ConcernRepository,
	links catalog.ConcernTreatmentRepository,
	packages catalog.PackageRepository,
	opts ...Option,
) *Service {
	s := &Service{
		concerns: concerns,
		links:    links,
		packages: packages,
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeQuery lower-cases a raw concern query. Surrounding whitespace is kept,
// so " acne scars" does not match "acne scars".
func NormalizeQuery(raw string) string {
	return cases.Lower(language.Und).String(raw)
}

// Resolve looks up the concern named query (after lower-casing) and returns its
// treatments and packages. An unknown concern yields an empty, successful Result.
func (s *Service) Resolve(ctx context.Context, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		s.recorder.RecordSearch(OutcomeRejected)
		return nil, ErrConcernRequired
	}
	name := NormalizeQuery(query)

	concern, err := s.concerns.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			logger.L(ctx).Debug("concern not found", zap.String("concern", name))
			s.recorder.RecordSearch(OutcomeNoMatch)
			return emptyResult(), nil
		}
		return nil, err
	}

	links, err := s.links.FindByConcernID(ctx, concern.ID)
	if err != nil {
		return nil, err
	}

	result := emptyResult()
	result.Concern = &ConcernResponse{ID: concern.ID, Name: concern.Name}

	treatmentIDs := make([]uuid.UUID, 0, len(links))
	seen := make(map[uuid.UUID]struct{}, len(links))
	for i := range links {
		t := links[i].Treatment
		if t == nil {
			continue
		}
		result.Treatments = append(result.Treatments, *ToTreatmentResponse(t))
		if _, dup := seen[t.ID]; !dup {
			seen[t.ID] = struct{}{}
			treatmentIDs = append(treatmentIDs, t.ID)
		}
	}

	packages, err := s.packages.FindByTreatmentIDs(ctx, treatmentIDs)
	if err != nil {
		return nil, err
	}
	for i := range packages {
		result.Packages = append(result.Packages, ToPackageResponse(&packages[i]))
	}

	logger.L(ctx).Debug("concern resolved",
		zap.String("concern", name),
		zap.Int("treatments", len(result.Treatments)),
		zap.Int("packages", len(result.Packages)),
	)
	s.recorder.RecordSearch(OutcomeMatched)
	return result, nil
}
