// Package seed resets the catalog to the demo dataset.
package seed

import (
	"context"
	"fmt"

	"github.com/clinicfinder/backend/internal/domain/catalog"
	"github.com/clinicfinder/backend/internal/infrastructure/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SuccessMessage is reported after a complete seed
const SuccessMessage = "Database seeded successfully"

// Counts reports how many records of each kind were inserted
type Counts struct {
	Concerns   int `json:"concerns"`
	Treatments int `json:"treatments"`
	Mappings   int `json:"mappings"`
	Packages   int `json:"packages"`
}

// Recorder receives seed outcomes for metrics
type Recorder interface {
	RecordSeed(success bool)
}

type nopRecorder struct{}

func (nopRecorder) RecordSeed(bool) {}

// Service performs the destructive catalog reset
type Service struct {
	concerns   catalog.ConcernRepository
	treatments catalog.TreatmentRepository
	links      catalog.ConcernTreatmentRepository
	packages   catalog.PackageRepository
	recorder   Recorder
}

// NewService creates a new seed Service
func NewService(
	concerns catalog.ConcernRepository,
	treatments catalog.TreatmentRepository,
	links catalog.ConcernTreatmentRepository,
	packages catalog.PackageRepository,
	recorder Recorder,
) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		concerns:   concerns,
		treatments: treatments,
		links:      links,
		packages:   packages,
		recorder:   recorder,
	}
}

// Seed clears concerns, treatments, links and packages, then inserts the demo
// dataset. Enquiries are left alone. The steps are not atomic: a failure part way
// leaves whatever was already written.
func (s *Service) Seed(ctx context.Context) (*Counts, error) {
	counts, err := s.seed(ctx)
	s.recorder.RecordSeed(err == nil)
	if err != nil {
		logger.L(ctx).Error("seeding failed", zap.Error(err))
		return nil, err
	}
	logger.L(ctx).Info("catalog seeded",
		zap.Int("concerns", counts.Concerns),
		zap.Int("treatments", counts.Treatments),
		zap.Int("mappings", counts.Mappings),
		zap.Int("packages", counts.Packages),
	)
	return counts, nil
}

func (s *Service) seed(ctx context.Context) (*Counts, error) {
	if err := s.clear(ctx); err != nil {
		return nil, err
	}

	concerns := make([]*catalog.Concern, 0, len(demoConcerns))
	concernByName := make(map[string]*catalog.Concern, len(demoConcerns))
	for _, name := range demoConcerns {
		c, err := catalog.NewConcern(name)
		if err != nil {
			return nil, err
		}
		concerns = append(concerns, c)
		concernByName[name] = c
	}
	if err := s.concerns.SaveBatch(ctx, concerns); err != nil {
		return nil, err
	}

	treatments := make([]*catalog.Treatment, 0, len(demoTreatments))
	treatmentByName := make(map[string]*catalog.Treatment, len(demoTreatments))
	for _, name := range demoTreatments {
		t, err := catalog.NewTreatment(name)
		if err != nil {
			return nil, err
		}
		treatments = append(treatments, t)
		treatmentByName[name] = t
	}
	if err := s.treatments.SaveBatch(ctx, treatments); err != nil {
		return nil, err
	}

	var links []*catalog.ConcernTreatment
	for _, m := range demoMapping {
		for _, tn := range m.treatments {
			link, err := catalog.NewConcernTreatment(concernByName[m.concern], treatmentByName[tn])
			if err != nil {
				return nil, fmt.Errorf("map %q to %q: %w", m.concern, tn, err)
			}
			links = append(links, link)
		}
	}
	if err := s.links.SaveBatch(ctx, links); err != nil {
		return nil, err
	}

	packages := make([]*catalog.Package, 0, len(demoPackages))
	for _, dp := range demoPackages {
		p, err := catalog.NewPackage(dp.clinic, dp.name, treatmentByName[dp.treatment], decimal.NewFromInt(dp.price))
		if err != nil {
			return nil, fmt.Errorf("package %q: %w", dp.name, err)
		}
		packages = append(packages, p)
	}
	if err := s.packages.SaveBatch(ctx, packages); err != nil {
		return nil, err
	}

	return &Counts{
		Concerns:   len(concerns),
		Treatments: len(treatments),
		Mappings:   len(links),
		Packages:   len(packages),
	}, nil
}

// clear removes catalog rows children first so foreign keys hold
func (s *Service) clear(ctx context.Context) error {
	steps := []struct {
		name string
		del  func(context.Context) (int64, error)
	}{
		{"concern_treatments", s.links.DeleteAll},
		{"packages", s.packages.DeleteAll},
		{"concerns", s.concerns.DeleteAll},
		{"treatments", s.treatments.DeleteAll},
	}
	for _, step := range steps {
		n, err := step.del(ctx)
		if err != nil {
			return err
		}
		logger.L(ctx).Debug("cleared", zap.String("table", step.name), zap.Int64("rows", n))
	}
	return nil
}
