package enquiry

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/clinicfinder/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Field limits for an enquiry
const (
	MinUserNameLength = 2
	MaxMessageLength  = 500
)

// Enquiry is a user's contact request about a package.
// PackageID is kept as submitted; it is not checked against the catalog,
// so it may refer to a package that does not (or no longer) exist.
type Enquiry struct {
	shared.BaseEntity
	PackageID string
	UserName  string
	UserEmail string
	Message   string
}

// NewEnquiry creates a new enquiry stamped with the given time
func NewEnquiry(packageID, userName, userEmail, message string, at time.Time) (*Enquiry, error) {
	if err := validate(packageID, userName, userEmail, message); err != nil {
		return nil, err
	}
	return &Enquiry{
		BaseEntity: shared.NewBaseEntityAt(at),
		PackageID:  packageID,
		UserName:   userName,
		UserEmail:  userEmail,
		Message:    message,
	}, nil
}

// PackageUUID returns the referenced package ID when it is a well-formed UUID
func (e *Enquiry) PackageUUID() (uuid.UUID, bool) {
	id, err := uuid.Parse(e.PackageID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CreatedEvent returns the event announcing this enquiry
func (e *Enquiry) CreatedEvent() *CreatedEvent {
	return NewCreatedEvent(e)
}

func validate(packageID, userName, userEmail, message string) error {
	if packageID == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "package_id is required")
	}
	if utf8.RuneCountInString(userName) < MinUserNameLength {
		return shared.NewDomainError("VALIDATION_ERROR", "user_name must be at least 2 characters")
	}
	if !looksLikeEmail(userEmail) {
		return shared.NewDomainError("VALIDATION_ERROR", "user_email must be a valid email")
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return shared.NewDomainError("VALIDATION_ERROR", "message cannot exceed 500 characters")
	}
	return nil
}

// looksLikeEmail is a structural check only; the full address grammar is enforced at the HTTP edge
func looksLikeEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n") && !strings.Contains(domain, "@")
}
