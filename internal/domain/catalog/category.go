package catalog

import (
	"strings"
	"time"

	"service-broker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCategoryName    = errs.Wrap(errs.ErrValidation, "category name cannot be empty")
	ErrCommissionOutOfRange = errs.Wrap(errs.ErrValidation, "commission rate must be between 0 and 100")
	ErrCategoryInactive     = errs.Wrap(errs.ErrValidation, "service category is not accepting requests")
	hundred                 = decimal.NewFromInt(100)
)

// ServiceCategory is a catalog entry. Operators maintain it; the broker only reads it.
type ServiceCategory struct {
	id             uuid.UUID
	name           string
	commissionRate decimal.Decimal
	policy         AssignmentPolicy
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewServiceCategory(id uuid.UUID, name string, commissionRate decimal.Decimal, policy AssignmentPolicy, active bool) (*ServiceCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}
	if err := ValidateCommissionRate(commissionRate); err != nil {
		return nil, err
	}
	if !policy.IsValid() {
		return nil, errs.Wrapf(ErrUnknownPolicy, "policy %q", policy)
	}
	return &ServiceCategory{
		id:             id,
		name:           name,
		commissionRate: commissionRate,
		policy:         policy,
		active:         active,
	}, nil
}

// ReconstructServiceCategory hydrates a stored row without validating the policy,
// so an unknown policy surfaces as a configuration error at resolution time.
func ReconstructServiceCategory(
	id uuid.UUID,
	name string,
	commissionRate decimal.Decimal,
	policy AssignmentPolicy,
	active bool,
	createdAt, updatedAt time.Time,
) *ServiceCategory {
	return &ServiceCategory{
		id:             id,
		name:           name,
		commissionRate: commissionRate,
		policy:         policy,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func ValidateCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return ErrCommissionOutOfRange
	}
	return nil
}

func (c *ServiceCategory) EnsureAcceptingRequests() error {
	if !c.active {
		return ErrCategoryInactive
	}
	return nil
}

func (c *ServiceCategory) ID() uuid.UUID                   { return c.id }
func (c *ServiceCategory) Name() string                    { return c.name }
func (c *ServiceCategory) CommissionRate() decimal.Decimal { return c.commissionRate }
func (c *ServiceCategory) Policy() AssignmentPolicy        { return c.policy }
func (c *ServiceCategory) IsActive() bool                  { return c.active }
func (c *ServiceCategory) CreatedAt() time.Time            { return c.createdAt }
func (c *ServiceCategory) UpdatedAt() time.Time            { return c.updatedAt }
