// Package export writes the enquiry listing as CSV to object storage.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"time"

	enquiryapp "github.com/clinicfinder/backend/internal/application/enquiry"
	"github.com/clinicfinder/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const contentType = "text/csv"

// Header is the first CSV row
var Header = []string{
	"enquiry_id", "created_at", "package_id", "clinic_name", "package_name",
	"treatment", "price", "user_name", "user_email", "message",
}

// EnquiryLister lists enquiries with packages resolved
type EnquiryLister interface {
	List(ctx context.Context) ([]enquiryapp.EnquiryListItem, error)
}

// ObjectStorage stores export files and hands out download links
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// Recorder receives export outcomes for metrics
type Recorder interface {
	RecordExport(rows int, err error)
}

type nopRecorder struct{}

func (nopRecorder) RecordExport(int, error) {}

// Result describes a finished export
type Result struct {
	Key       string    `json:"key"`
	Rows      int       `json:"rows"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service runs enquiry exports
type Service struct {
	enquiries EnquiryLister
	storage   ObjectStorage
	keyPrefix string
	linkTTL   time.Duration
	recorder  Recorder
	now       func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithKeyPrefix sets the object key prefix (default "exports")
func WithKeyPrefix(prefix string) Option {
	return func(s *Service) { s.keyPrefix = prefix }
}

// WithLinkTTL sets how long download links stay valid
func WithLinkTTL(d time.Duration) Option {
	return func(s *Service) { s.linkTTL = d }
}

// WithRecorder reports export outcomes to r
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithClock overrides the clock used for object keys
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new export Service
func NewService(enquiries EnquiryLister, storage ObjectStorage, opts ...Option) *Service {
	s := &Service{
		enquiries: enquiries,
		storage:   storage,
		keyPrefix: "exports",
		linkTTL:   15 * time.Minute,
		recorder:  nopRecorder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run exports every enquiry to <prefix>/enquiries-<timestamp>.csv
func (s *Service) Run(ctx context.Context) (*Result, error) {
	res, err := s.run(ctx)
	rows := 0
	if res != nil {
		rows = res.Rows
	}
	s.recorder.RecordExport(rows, err)
	return res, err
}

func (s *Service) run(ctx context.Context) (*Result, error) {
	items, err := s.enquiries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}

	data, err := EncodeCSV(items)
	if err != nil {
		return nil, err
	}

	key := path.Join(s.keyPrefix, "enquiries-"+s.now().UTC().Format("20060102T150405Z")+".csv")
	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, key, s.linkTTL)
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", key, err)
	}

	logger.L(ctx).Info("enquiries exported", zap.String("key", key), zap.Int("rows", len(items)))
	return &Result{Key: key, Rows: len(items), URL: url, ExpiresAt: expiresAt}, nil
}

// EncodeCSV renders enquiries as CSV with Header first. Package columns are
// blank for enquiries whose package no longer exists.
func EncodeCSV(items []enquiryapp.EnquiryListItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, err
	}

	for _, it := range items {
		var clinic, pkgName, treatment, price string
		if p := it.Package; p != nil {
			clinic, pkgName = p.ClinicName, p.PackageName
			price = strconv.FormatFloat(p.Price, 'f', -1, 64)
			if p.Treatment != nil {
				treatment = p.Treatment.Name
			}
		}
		record := []string{
			it.ID.String(),
			it.CreatedAt.UTC().Format(time.RFC3339),
			it.PackageID,
			clinic,
			pkgName,
			treatment,
			price,
			it.UserName,
			it.UserEmail,
			it.Message,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
