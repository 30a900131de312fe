package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
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

type AgencyQuoteResponse struct {
	QuoteResponse
	RequestStatus string `json:"request_status"`
}

type SubmitQuoteResponse struct {
	Quote   *QuoteResponse `json:"quote"`
	Created bool           `json:"created"`
}

type SweepResponse struct {
	Expired      int64 `json:"expired"`
	ExpiringSoon int   `json:"expiring_soon"`
}
