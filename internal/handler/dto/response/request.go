package response

import (
	"time"

	"github.com/google/uuid"
)

type RequestResponse struct {
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

type RequestListItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	Status          string     `json:"status"`
	WinningAgencyID *uuid.UUID `json:"winning_agency_id,omitempty"`
	PendingQuotes   int        `json:"pending_quotes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AgencyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
