package enquiry

import (
	"time"

	"github.com/clinicfinder/backend/internal/application/resolution"
	"github.com/clinicfinder/backend/internal/domain/enquiry"
	"github.com/google/uuid"
)

// CreateEnquiryRequest is the input of Service.Create
type CreateEnquiryRequest struct {
	PackageID string
	UserName  string
	UserEmail string
	Message   string

	// IdempotencyKey is optional; an empty key disables the duplicate check
	IdempotencyKey string
}

// EnquiryResponse represents a stored enquiry
type EnquiryResponse struct {
	ID        uuid.UUID `json:"id"`
	PackageID string    `json:"package_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EnquiryListItem is an enquiry with its package resolved. Package is nil
// when the referenced package does not exist.
type EnquiryListItem struct {
	EnquiryResponse
	Package *resolution.PackageResponse `json:"package"`
}

// ToEnquiryResponse converts a domain enquiry
func ToEnquiryResponse(e *enquiry.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:        e.ID,
		PackageID: e.PackageID,
		UserName:  e.UserName,
		UserEmail: e.UserEmail,
		Message:   e.Message,
		CreatedAt: e.CreatedAt,
	}
}
