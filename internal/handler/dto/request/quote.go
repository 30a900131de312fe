package request

import (
	"time"

	"service-broker/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// Amount accepts a JSON number or a decimal string; range checks live in the domain.
type SubmitQuoteRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	ProcessingDays int             `json:"processing_days" binding:"required"`
	ValidUntil     time.Time       `json:"valid_until" binding:"required"`
}

func (r *SubmitQuoteRequest) ToInput() commands.SubmitQuoteInput {
	return commands.SubmitQuoteInput{
		Amount:         r.Amount,
		ProcessingDays: r.ProcessingDays,
		ValidUntil:     r.ValidUntil,
	}
}
