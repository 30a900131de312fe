package converter

import (
	"service-broker/internal/domain/agency"
	"service-broker/internal/domain/catalog"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"
)

func CategoryToDomain(row sqlc.ServiceCategories) (*catalog.ServiceCategory, error) {
	rate, err := pgconv.DecimalFromNumeric(row.CommissionRate)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructServiceCategory(
		row.ID,
		row.Name,
		rate,
		catalog.AssignmentPolicy(row.AssignmentPolicy),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func AgencyToDomain(row sqlc.Agencies) agency.Agency {
	return agency.NewAgency(row.ID, row.Name, row.IsActive, pgconv.TimeFromPgtype(row.CreatedAt))
}

func AssignmentToDomain(row sqlc.AgencyAssignments) agency.Assignment {
	return agency.NewAssignment(row.ID, row.AgencyID, row.CategoryID, row.Countries, row.IsActive)
}

func ResourceToDomain(row sqlc.ExternalResources) agency.ExternalResource {
	return agency.NewExternalResource(row.ID, row.Name, row.CategoryID, row.OwnerAgencyID, row.IsPrimary)
}
