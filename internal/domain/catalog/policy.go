package catalog

import "service-broker/internal/pkg/errs"

// AssignmentPolicy decides which agencies may quote on a category.
type AssignmentPolicy string

const (
	PolicyCompetitive       AssignmentPolicy = "competitive"
	PolicyExclusiveResource AssignmentPolicy = "exclusive_resource"
	PolicyGlobalSingle      AssignmentPolicy = "global_single"
	PolicyMultiCountry      AssignmentPolicy = "multi_country"
)

var ErrUnknownPolicy = errs.Wrap(errs.ErrConfiguration, "unknown assignment policy")

func Policies() []AssignmentPolicy {
	return []AssignmentPolicy{
		PolicyCompetitive,
		PolicyExclusiveResource,
		PolicyGlobalSingle,
		PolicyMultiCountry,
	}
}

func (p AssignmentPolicy) String() string {
	return string(p)
}

func (p AssignmentPolicy) IsValid() bool {
	switch p {
	case PolicyCompetitive, PolicyExclusiveResource, PolicyGlobalSingle, PolicyMultiCountry:
		return true
	default:
		return false
	}
}

// CountryScoped reports whether eligibility depends on the request's country.
func (p AssignmentPolicy) CountryScoped() bool {
	return p == PolicyCompetitive || p == PolicyMultiCountry
}

func ParsePolicy(s string) (AssignmentPolicy, error) {
	p := AssignmentPolicy(s)
	if !p.IsValid() {
		return "", errs.Wrapf(ErrUnknownPolicy, "policy %q", s)
	}
	return p, nil
}
