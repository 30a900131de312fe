//go:build unit

package repository

import (
	"context"
	"testing"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/infra"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogQueries struct {
	mock.Mock
}

func (m *MockCatalogQueries) GetServiceCategory(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceCategories, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.ServiceCategories), args.Error(1)
}

func (m *MockCatalogQueries) ListAgenciesByCategory(ctx context.Context, db sqlc.DBTX, categoryID uuid.UUID) ([]sqlc.Agencies, error) {
	args := m.Called(ctx, db, categoryID)
	return args.Get(0).([]sqlc.Agencies), args.Error(1)
}

func (m *MockCatalogQueries) ListAssignmentsByCategory(ctx context.Context, db sqlc.DBTX, categoryID uuid.UUID) ([]sqlc.AgencyAssignments, error) {
	args := m.Called(ctx, db, categoryID)
	return args.Get(0).([]sqlc.AgencyAssignments), args.Error(1)
}

func (m *MockCatalogQueries) ListResourcesByCategory(ctx context.Context, db sqlc.DBTX, categoryID uuid.UUID) ([]sqlc.ExternalResources, error) {
	args := m.Called(ctx, db, categoryID)
	return args.Get(0).([]sqlc.ExternalResources), args.Error(1)
}

func TestCatalogRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown policy is kept for the resolver to reject", func(t *testing.T) {
		id := uuid.New()
		m := new(MockCatalogQueries)
		m.On("GetServiceCategory", mock.Anything, mock.Anything, id).Return(sqlc.ServiceCategories{
			ID:               id,
			Name:             "Visa",
			CommissionRate:   pgconv.DecimalToNumeric(decimal.RequireFromString("12.50")),
			AssignmentPolicy: "round_robin",
			IsActive:         true,
		}, nil)

		category, err := NewCatalogRepository(m, nil).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, catalog.AssignmentPolicy("round_robin"), category.Policy())
		assert.True(t, category.CommissionRate().Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("missing category", func(t *testing.T) {
		m := new(MockCatalogQueries)
		m.On("GetServiceCategory", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.ServiceCategories{}, pgx.ErrNoRows)

		_, err := NewCatalogRepository(m, nil).FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCatalogRepository_CandidatesForCategory(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()
	agencyID := uuid.New()

	t.Run("assembles the candidate set", func(t *testing.T) {
		m := new(MockCatalogQueries)
		m.On("ListAgenciesByCategory", mock.Anything, mock.Anything, categoryID).
			Return([]sqlc.Agencies{{ID: agencyID, Name: "Alpha", IsActive: true}}, nil)
		m.On("ListAssignmentsByCategory", mock.Anything, mock.Anything, categoryID).
			Return([]sqlc.AgencyAssignments{{ID: uuid.New(), AgencyID: agencyID, CategoryID: categoryID, Countries: []string{"JP", "KR"}, IsActive: true}}, nil)
		m.On("ListResourcesByCategory", mock.Anything, mock.Anything, categoryID).
			Return([]sqlc.ExternalResources{{ID: uuid.New(), Name: "Embassy", CategoryID: categoryID, OwnerAgencyID: agencyID, IsPrimary: true}}, nil)

		c, err := NewCatalogRepository(m, nil).CandidatesForCategory(ctx, categoryID)

		require.NoError(t, err)
		require.Contains(t, c.Agencies, agencyID)
		assert.Equal(t, "Alpha", c.Agencies[agencyID].Name())
		require.Len(t, c.Assignments, 1)
		assert.True(t, c.Assignments[0].Covers("KR"))
		assert.False(t, c.Assignments[0].Covers("US"))
		require.Len(t, c.Resources, 1)
		assert.True(t, c.Resources[0].IsPrimary())
	})

	t.Run("query failure stops assembly", func(t *testing.T) {
		m := new(MockCatalogQueries)
		m.On("ListAgenciesByCategory", mock.Anything, mock.Anything, categoryID).Return([]sqlc.Agencies(nil), assert.AnError)

		_, err := NewCatalogRepository(m, nil).CandidatesForCategory(ctx, categoryID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		m.AssertNotCalled(t, "ListAssignmentsByCategory", mock.Anything, mock.Anything, mock.Anything)
	})
}
