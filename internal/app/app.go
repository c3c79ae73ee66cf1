// Package app wires repositories and application services on top of a database.
package app

import (
	enquiryapp "github.com/clinicfinder/backend/internal/application/enquiry"
	"github.com/clinicfinder/backend/internal/application/export"
	"github.com/clinicfinder/backend/internal/application/resolution"
	"github.com/clinicfinder/backend/internal/application/seed"
	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/clinicfinder/backend/internal/infrastructure/persistence"
	"github.com/clinicfinder/backend/internal/infrastructure/telemetry"
	"gorm.io/gorm"
)

// Options carries the optional collaborators of the services
type Options struct {
	Metrics     *telemetry.BusinessMetrics
	Publisher   shared.EventPublisher
	Idempotency shared.IdempotencyStore
	IdemConfig  shared.IdempotencyConfig
	Storage     export.ObjectStorage
	ExportOpts  []export.Option
}

// Services holds the application services built over one database
type Services struct {
	Resolution *resolution.Service
	Enquiry    *enquiryapp.Service
	Seed       *seed.Service
	// Export is nil when no storage was given
	Export *export.Service
}

// New builds the repositories over db and the services over them
func New(db *gorm.DB, opts Options) *Services {
	concerns := persistence.NewGormConcernRepository(db)
	treatments := persistence.NewGormTreatmentRepository(db)
	links := persistence.NewGormConcernTreatmentRepository(db)
	packages := persistence.NewGormPackageRepository(db)
	enquiries := persistence.NewGormEnquiryRepository(db)

	var resolutionOpts []resolution.Option
	var enquiryOpts []enquiryapp.Option
	var seedRecorder seed.Recorder
	exportOpts := append([]export.Option(nil), opts.ExportOpts...)

	if opts.Metrics != nil {
		resolutionOpts = append(resolutionOpts, resolution.WithRecorder(opts.Metrics))
		enquiryOpts = append(enquiryOpts, enquiryapp.WithRecorder(opts.Metrics))
		exportOpts = append(exportOpts, export.WithRecorder(opts.Metrics))
		seedRecorder = opts.Metrics
	}
	if opts.Publisher != nil {
		enquiryOpts = append(enquiryOpts, enquiryapp.WithEventPublisher(opts.Publisher))
	}
	if opts.Idempotency != nil && opts.IdemConfig.Enabled {
		enquiryOpts = append(enquiryOpts, enquiryapp.WithIdempotency(opts.Idempotency, opts.IdemConfig))
	}

	s := &Services{
		Resolution: resolution.NewService(concerns, links, packages, resolutionOpts...),
		Enquiry:    enquiryapp.NewService(enquiries, packages, enquiryOpts...),
		Seed:       seed.NewService(concerns, treatments, links, packages, seedRecorder),
	}
	if opts.Storage != nil {
		s.Export = export.NewService(s.Enquiry, opts.Storage, exportOpts...)
	}
	return s
}
