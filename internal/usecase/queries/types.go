package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	AgencyID *uuid.UUID `json:"agency_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

// RequestView is a request joined with its category and winning agency names.
type RequestView struct {
	ID                uuid.UUID      `json:"id"`
	ApplicantID       uuid.UUID      `json:"applicant_id"`
	CategoryID        uuid.UUID      `json:"category_id"`
	CategoryName      string         `json:"category_name"`
	AssignmentPolicy  string         `json:"assignment_policy"`
	Status            string         `json:"status"`
	WinningAgencyID   *uuid.UUID     `json:"winning_agency_id,omitempty"`
	WinningAgencyName *string        `json:"winning_agency_name,omitempty"`
	Payload           map[string]any `json:"payload"`
	CancelReason      *string        `json:"cancel_reason,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	AcceptedAt        *time.Time     `json:"accepted_at,omitempty"`
	CompletedAt       *time.Time     `json:"completed_at,omitempty"`
	CancelledAt       *time.Time     `json:"cancelled_at,omitempty"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type RequestSummaryView struct {
	ID              uuid.UUID  `json:"id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	Status          string     `json:"status"`
	WinningAgencyID *uuid.UUID `json:"winning_agency_id,omitempty"`
	PendingQuotes   int        `json:"pending_quotes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AgencyView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// QuoteView carries the derived cheapest/fastest badges; they are never stored.
type QuoteView struct {
	ID                 uuid.UUID       `json:"id"`
	RequestID          uuid.UUID       `json:"request_id"`
	AgencyID           uuid.UUID       `json:"agency_id"`
	AgencyName         string          `json:"agency_name"`
	Amount             decimal.Decimal `json:"amount"`
	PlatformCommission decimal.Decimal `json:"platform_commission"`
	AgencyEarnings     decimal.Decimal `json:"agency_earnings"`
	ProcessingDays     int             `json:"processing_days"`
	ValidUntil         time.Time       `json:"valid_until"`
	Status             string          `json:"status"`
	Cheapest           bool            `json:"cheapest"`
	Fastest            bool            `json:"fastest"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	DecidedAt          *time.Time      `json:"decided_at,omitempty"`
}

type AgencyQuoteView struct {
	QuoteView
	RequestStatus string `json:"request_status"`
}
