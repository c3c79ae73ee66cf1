package enquiry

import "github.com/clinicfinder/backend/internal/domain/shared"

// AggregateTypeEnquiry is the aggregate type of enquiry events
const AggregateTypeEnquiry = "Enquiry"

// EventTypeEnquiryCreated is published after an enquiry is stored
const EventTypeEnquiryCreated = "enquiry.created"

// CreatedEvent is published when a new enquiry is stored
type CreatedEvent struct {
	shared.BaseDomainEvent
	EnquiryID string `json:"enquiry_id"`
	PackageID string `json:"package_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Message   string `json:"message,omitempty"`
}

// NewCreatedEvent creates a new CreatedEvent
func NewCreatedEvent(e *Enquiry) *CreatedEvent {
	return &CreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEnquiryCreated, AggregateTypeEnquiry, e.ID, e.CreatedAt),
		EnquiryID:       e.ID.String(),
		PackageID:       e.PackageID,
		UserName:        e.UserName,
		UserEmail:       e.UserEmail,
		Message:         e.Message,
	}
}
