//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase/queries"
	"service-broker/internal/usecase/shared"
	"service-broker/tests/common/builder"
	queriesmock "service-broker/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequestQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	cb := builder.NewCatalogBuilder()
	tokyo := cb.AddAgency("Tokyo Visas", "JP")
	paris := cb.AddAgency("Paris Visas", "FR")
	winner := uuid.New()
	applicant := uuid.New()

	type stubs struct {
		requests *queriesmock.MockRequestReadStore
		catalog  *queriesmock.MockCatalogReadStore
		view     *queries.RequestView
	}
	expectEligibility := func(t *testing.T, s stubs) {
		category, err := cb.BuildCategory()
		require.NoError(t, err)
		s.catalog.EXPECT().FindCategory(gomock.Any(), cb.CategoryID).Return(category, nil)
		s.catalog.EXPECT().CandidatesForCategory(gomock.Any(), cb.CategoryID).Return(cb.BuildCandidates(), nil)
	}

	tests := []struct {
		name  string
		actor shared.Actor
		stub  func(t *testing.T, s stubs)
		errIs error
	}{
		{
			name:  "owner",
			actor: builder.NewUserBuilder().WithID(applicant).AsApplicant().BuildActor(),
		},
		{
			name:  "admin",
			actor: builder.NewUserBuilder().AsAdmin().BuildActor(),
		},
		{
			name:  "winning agency",
			actor: builder.NewUserBuilder().AsAgency(winner).BuildActor(),
		},
		{
			name:  "agency that quoted",
			actor: builder.NewUserBuilder().AsAgency(paris).BuildActor(),
			stub: func(_ *testing.T, s stubs) {
				s.requests.EXPECT().HasQuoteFrom(gomock.Any(), s.view.ID, paris).Return(true, nil)
			},
		},
		{
			name:  "eligible agency",
			actor: builder.NewUserBuilder().AsAgency(tokyo).BuildActor(),
			stub: func(t *testing.T, s stubs) {
				s.requests.EXPECT().HasQuoteFrom(gomock.Any(), s.view.ID, tokyo).Return(false, nil)
				expectEligibility(t, s)
			},
		},
		{
			name:  "agency outside the destination",
			actor: builder.NewUserBuilder().AsAgency(paris).BuildActor(),
			stub: func(t *testing.T, s stubs) {
				s.requests.EXPECT().HasQuoteFrom(gomock.Any(), s.view.ID, paris).Return(false, nil)
				expectEligibility(t, s)
			},
			errIs: queries.ErrRequestAccess,
		},
		{
			name:  "other applicant",
			actor: builder.NewUserBuilder().AsApplicant().BuildActor(),
			errIs: queries.ErrRequestAccess,
		},
		{
			name:  "read store failure is passed through",
			actor: builder.NewUserBuilder().AsAgency(tokyo).BuildActor(),
			stub: func(_ *testing.T, s stubs) {
				s.requests.EXPECT().HasQuoteFrom(gomock.Any(), s.view.ID, tokyo).Return(false, errBoom)
			},
			errIs: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := stubs{
				requests: queriesmock.NewMockRequestReadStore(ctrl),
				catalog:  queriesmock.NewMockCatalogReadStore(ctrl),
				view: &queries.RequestView{
					ID:              uuid.New(),
					ApplicantID:     applicant,
					CategoryID:      cb.CategoryID,
					Status:          "accepted",
					WinningAgencyID: &winner,
					Payload:         map[string]any{"destination_country": "JP"},
				},
			}
			s.requests.EXPECT().FindByID(gomock.Any(), s.view.ID).Return(s.view, nil)
			if tt.stub != nil {
				tt.stub(t, s)
			}

			got, err := queries.NewRequestQueries(s.requests, s.catalog).GetByID(ctx, tt.actor, s.view.ID)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, s.view, got)
		})
	}
}

var errBoom = errors.New("boom")

func TestRequestQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	requests := queriesmock.NewMockRequestReadStore(ctrl)
	sut := queries.NewRequestQueries(requests, queriesmock.NewMockCatalogReadStore(ctrl))

	applicant := builder.NewUserBuilder().AsApplicant()
	want := []*queries.RequestSummaryView{{ID: uuid.New(), Status: "pending"}}
	requests.EXPECT().ListByApplicant(gomock.Any(), applicant.ID).Return(want, nil)

	got, err := sut.ListMine(ctx, applicant.BuildActor())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = sut.ListMine(ctx, builder.NewUserBuilder().AsAgency(uuid.New()).BuildActor())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
}

func TestRequestQueries_ListEligibleAgencies(t *testing.T) {
	ctx := context.Background()
	applicant := uuid.New()

	t.Run("multi-country category lists matching agencies by name", func(t *testing.T) {
		cb := builder.NewCatalogBuilder().WithPolicy(catalog.PolicyMultiCountry)
		zurich := cb.AddAgency("Zurich Visas", "CH", "JP")
		akita := cb.AddAgency("Akita Visas", "JP")
		cb.AddAgency("Paris Visas", "FR")
		cb.AddInactiveAssignment("Dormant Visas")
		category, err := cb.BuildCategory()
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		requests := queriesmock.NewMockRequestReadStore(ctrl)
		catalogStore := queriesmock.NewMockCatalogReadStore(ctrl)
		view := &queries.RequestView{ID: uuid.New(), ApplicantID: applicant, CategoryID: cb.CategoryID, Payload: map[string]any{"destination_country": "jp"}}
		requests.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		catalogStore.EXPECT().FindCategory(gomock.Any(), cb.CategoryID).Return(category, nil)
		catalogStore.EXPECT().CandidatesForCategory(gomock.Any(), cb.CategoryID).Return(cb.BuildCandidates(), nil)

		got, err := queries.NewRequestQueries(requests, catalogStore).
			ListEligibleAgencies(ctx, builder.NewUserBuilder().WithID(applicant).AsApplicant().BuildActor(), view.ID)
		require.NoError(t, err)

		want := []queries.AgencyView{{ID: akita, Name: "Akita Visas"}, {ID: zurich, Name: "Zurich Visas"}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("eligible agencies mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("only the owner or an admin may ask", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requests := queriesmock.NewMockRequestReadStore(ctrl)
		view := &queries.RequestView{ID: uuid.New(), ApplicantID: applicant}
		requests.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := queries.NewRequestQueries(requests, queriesmock.NewMockCatalogReadStore(ctrl)).
			ListEligibleAgencies(ctx, builder.NewUserBuilder().AsApplicant().BuildActor(), view.ID)
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrRequestAccess)
	})
}
