package shared

import (
	"time"

	"service-broker/internal/domain/user"
	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAgencyActorRequired    = errs.Wrap(errs.ErrForbidden, "caller must act for an agency")
	ErrApplicantActorRequired = errs.Wrap(errs.ErrForbidden, "caller must be an applicant")
	ErrAdminActorRequired     = errs.Wrap(errs.ErrForbidden, "caller must be an admin")
)

// Actor is the authenticated caller, passed explicitly into every use case.
type Actor struct {
	UserID   uuid.UUID
	Role     user.Role
	AgencyID *uuid.UUID
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// Agency returns the agency the caller acts for.
func (a Actor) Agency() (uuid.UUID, error) {
	if a.Role != user.RoleAgency || a.AgencyID == nil {
		return uuid.Nil, ErrAgencyActorRequired
	}
	return *a.AgencyID, nil
}

func (a Actor) RequireApplicant() error {
	if a.Role != user.RoleApplicant {
		return ErrApplicantActorRequired
	}
	return nil
}

func (a Actor) RequireAdmin() error {
	if !a.IsAdmin() {
		return ErrAdminActorRequired
	}
	return nil
}

// Minimal snapshot for the expiring-soon sweep
type ExpiringQuote struct {
	QuoteID     uuid.UUID
	RequestID   uuid.UUID
	AgencyID    uuid.UUID
	ApplicantID uuid.UUID
	ValidUntil  time.Time
}
