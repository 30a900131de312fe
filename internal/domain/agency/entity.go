package agency

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Agency struct {
	id        uuid.UUID
	name      string
	active    bool
	createdAt time.Time
}

func NewAgency(id uuid.UUID, name string, active bool, createdAt time.Time) Agency {
	return Agency{id: id, name: strings.TrimSpace(name), active: active, createdAt: createdAt}
}

func (a Agency) ID() uuid.UUID        { return a.id }
func (a Agency) Name() string         { return a.name }
func (a Agency) IsActive() bool       { return a.active }
func (a Agency) CreatedAt() time.Time { return a.createdAt }

// Assignment grants an agency the right to serve a category in a set of countries.
// An empty country set means the assignment is global.
type Assignment struct {
	id         uuid.UUID
	agencyID   uuid.UUID
	categoryID uuid.UUID
	countries  []string
	active     bool
}

func NewAssignment(id, agencyID, categoryID uuid.UUID, countries []string, active bool) Assignment {
	normalized := make([]string, 0, len(countries))
	for _, c := range countries {
		if c = NormalizeCountry(c); c != "" && !slices.Contains(normalized, c) {
			normalized = append(normalized, c)
		}
	}
	return Assignment{
		id:         id,
		agencyID:   agencyID,
		categoryID: categoryID,
		countries:  normalized,
		active:     active,
	}
}

func (a Assignment) ID() uuid.UUID         { return a.id }
func (a Assignment) AgencyID() uuid.UUID   { return a.agencyID }
func (a Assignment) CategoryID() uuid.UUID { return a.categoryID }
func (a Assignment) Countries() []string   { return slices.Clone(a.countries) }
func (a Assignment) IsActive() bool        { return a.active }

func (a Assignment) IsGlobal() bool {
	return len(a.countries) == 0
}

func (a Assignment) Covers(country string) bool {
	if a.IsGlobal() {
		return true
	}
	return slices.Contains(a.countries, NormalizeCountry(country))
}

// ExternalResource is a named third-party resource (a university, a consulate)
// whose primary owner agency holds exclusive quoting rights.
type ExternalResource struct {
	id            uuid.UUID
	name          string
	categoryID    uuid.UUID
	ownerAgencyID uuid.UUID
	primary       bool
}

func NewExternalResource(id uuid.UUID, name string, categoryID, ownerAgencyID uuid.UUID, primary bool) ExternalResource {
	return ExternalResource{
		id:            id,
		name:          strings.TrimSpace(name),
		categoryID:    categoryID,
		ownerAgencyID: ownerAgencyID,
		primary:       primary,
	}
}

func (r ExternalResource) ID() uuid.UUID            { return r.id }
func (r ExternalResource) Name() string             { return r.name }
func (r ExternalResource) CategoryID() uuid.UUID    { return r.categoryID }
func (r ExternalResource) OwnerAgencyID() uuid.UUID { return r.ownerAgencyID }
func (r ExternalResource) IsPrimary() bool          { return r.primary }

func NormalizeCountry(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
