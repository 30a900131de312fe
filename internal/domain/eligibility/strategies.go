package eligibility

import (
	"service-broker/internal/domain/agency"

	"github.com/google/uuid"
)

type competitive struct{}

func (competitive) Resolve(subject Subject, c *Candidates) ([]agency.Agency, error) {
	return coveringAgencies(subject, c), nil
}

// multiCountry resolves like competitive; its assignments may list several countries.
type multiCountry struct{}

func (multiCountry) Resolve(subject Subject, c *Candidates) ([]agency.Agency, error) {
	return coveringAgencies(subject, c), nil
}

type globalSingle struct{}

func (globalSingle) Resolve(subject Subject, c *Candidates) ([]agency.Agency, error) {
	var found []agency.Agency
	for _, asg := range c.Assignments {
		if !asg.IsActive() || !asg.IsGlobal() || asg.CategoryID() != subject.Category.ID() {
			continue
		}
		a, ok := c.Agencies[asg.AgencyID()]
		if !ok {
			continue
		}
		found = append(found, a)
	}
	if len(found) > 1 {
		return nil, ErrAmbiguousGlobalAssignment
	}
	if len(found) == 1 && found[0].IsActive() {
		return found, nil
	}
	return []agency.Agency{}, nil
}

type exclusiveResource struct{}

func (exclusiveResource) Resolve(subject Subject, c *Candidates) ([]agency.Agency, error) {
	owner, ok, err := resourceOwner(subject, c)
	if err != nil || !ok {
		return []agency.Agency{}, err
	}
	a, exists := c.Agencies[owner]
	if !exists || !a.IsActive() {
		return []agency.Agency{}, nil
	}
	return []agency.Agency{a}, nil
}

func resourceOwner(subject Subject, c *Candidates) (uuid.UUID, bool, error) {
	if subject.ResourceID != nil {
		for _, res := range c.Resources {
			if res.ID() == *subject.ResourceID && res.CategoryID() == subject.Category.ID() && res.IsPrimary() {
				return res.OwnerAgencyID(), true, nil
			}
		}
		return uuid.Nil, false, nil
	}

	var owners []uuid.UUID
	for _, res := range c.Resources {
		if res.IsPrimary() && res.CategoryID() == subject.Category.ID() {
			owners = append(owners, res.OwnerAgencyID())
		}
	}
	switch len(owners) {
	case 0:
		return uuid.Nil, false, nil
	case 1:
		return owners[0], true, nil
	default:
		return uuid.Nil, false, ErrAmbiguousPrimaryResource
	}
}

func coveringAgencies(subject Subject, c *Candidates) []agency.Agency {
	seen := make(map[uuid.UUID]bool)
	result := []agency.Agency{}
	for _, asg := range c.Assignments {
		if !asg.IsActive() || asg.CategoryID() != subject.Category.ID() {
			continue
		}
		if subject.Country == "" && !asg.IsGlobal() {
			continue
		}
		if !asg.Covers(subject.Country) {
			continue
		}
		a, ok := c.Agencies[asg.AgencyID()]
		if !ok || !a.IsActive() || seen[a.ID()] {
			continue
		}
		seen[a.ID()] = true
		result = append(result, a)
	}
	return result
}
