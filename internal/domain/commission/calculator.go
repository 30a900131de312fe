package commission

import (
	"service-broker/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// MaxAmount is the exclusive upper bound on a quoted amount; amounts are
// stored as NUMERIC(14,2).
var MaxAmount = decimal.New(1, 12)

var (
	ErrNonPositiveAmount = errs.Wrap(errs.ErrValidation, "quoted amount must be positive")
	ErrAmountPrecision   = errs.Wrap(errs.ErrValidation, "quoted amount supports at most 2 decimal places")
	ErrAmountTooLarge    = errs.Wrap(errs.ErrValidation, "quoted amount must be below 1000000000000")
	ErrRateOutOfRange    = errs.Wrap(errs.ErrValidation, "commission rate must be between 0 and 100")
	hundred              = decimal.NewFromInt(100)
)

// Split is the division of a quoted amount between platform and agency.
// PlatformCommission + AgencyEarnings always equals the quoted amount.
type Split struct {
	QuotedAmount       decimal.Decimal
	PlatformCommission decimal.Decimal
	AgencyEarnings     decimal.Decimal
}

type Calculator interface {
	Compute(quotedAmount, ratePercent decimal.Decimal) (Split, error)
}

// DefaultCalculator rounds the platform cut half away from zero to cents;
// the agency absorbs the rounding remainder.
type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (DefaultCalculator) Compute(quotedAmount, ratePercent decimal.Decimal) (Split, error) {
	return Compute(quotedAmount, ratePercent)
}

func Compute(quotedAmount, ratePercent decimal.Decimal) (Split, error) {
	if !quotedAmount.IsPositive() {
		return Split{}, ErrNonPositiveAmount
	}
	if quotedAmount.GreaterThanOrEqual(MaxAmount) {
		return Split{}, ErrAmountTooLarge
	}
	if !quotedAmount.Equal(quotedAmount.Truncate(moneyPlaces)) {
		return Split{}, ErrAmountPrecision
	}
	if ratePercent.IsNegative() || ratePercent.GreaterThan(hundred) {
		return Split{}, ErrRateOutOfRange
	}

	platform := quotedAmount.Mul(ratePercent).Div(hundred).Round(moneyPlaces)
	earnings := quotedAmount.Sub(platform)

	return Split{
		QuotedAmount:       quotedAmount,
		PlatformCommission: platform,
		AgencyEarnings:     earnings,
	}, nil
}
