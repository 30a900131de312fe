//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"service-broker/internal/infra"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestReadQueries struct {
	mock.Mock
}

func (m *MockRequestReadQueries) GetRequestView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRequestViewRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetRequestViewRow), args.Error(1)
}

func (m *MockRequestReadQueries) ListRequestsByApplicant(ctx context.Context, db sqlc.DBTX, applicantID uuid.UUID) ([]sqlc.ListRequestsByApplicantRow, error) {
	args := m.Called(ctx, db, applicantID)
	return args.Get(0).([]sqlc.ListRequestsByApplicantRow), args.Error(1)
}

func (m *MockRequestReadQueries) CountQuotesByRequestAndAgency(ctx context.Context, db sqlc.DBTX, arg sqlc.CountQuotesByRequestAndAgencyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestRequestReadStore_FindByID(t *testing.T) {
	winner := uuid.New()
	accepted := sqlc.GetRequestViewRow{
		ID:                uuid.New(),
		ApplicantID:       uuid.New(),
		CategoryID:        uuid.New(),
		CategoryName:      "Visa processing",
		AssignmentPolicy:  "competitive",
		Status:            "accepted",
		WinningAgencyID:   pgconv.UUIDToPgtype(winner),
		WinningAgencyName: pgconv.StringToPgtype("Tokyo Visas"),
		Payload:           []byte(`{"destination_country":"JP","travellers":2}`),
		CreatedAt:         pgconv.TimeToPgtype(storedAt),
		AcceptedAt:        pgconv.TimeToPgtype(storedAt.Add(time.Hour)),
		UpdatedAt:         pgconv.TimeToPgtype(storedAt.Add(time.Hour)),
	}
	pending := accepted
	pending.Status = "pending"
	pending.WinningAgencyID = pgtype.UUID{}
	pending.WinningAgencyName = pgtype.Text{}
	pending.AcceptedAt = pgtype.Timestamptz{}
	pending.Payload = nil

	t.Run("accepted request carries the winner", func(t *testing.T) {
		mockQueries := new(MockRequestReadQueries)
		mockQueries.On("GetRequestView", mock.Anything, mock.Anything, accepted.ID).Return(accepted, nil)

		view, err := NewRequestReadStore(mockQueries, nil).FindByID(context.Background(), accepted.ID)
		require.NoError(t, err)
		require.NotNil(t, view.WinningAgencyID)
		assert.Equal(t, winner, *view.WinningAgencyID)
		assert.Equal(t, "Tokyo Visas", *view.WinningAgencyName)
		assert.Equal(t, "JP", view.Payload["destination_country"])
		assert.InDelta(t, 2, view.Payload["travellers"], 0)
		require.NotNil(t, view.AcceptedAt)
		assert.Nil(t, view.CancelReason)
		assert.Nil(t, view.CompletedAt)
		mockQueries.AssertExpectations(t)
	})

	t.Run("pending request without payload", func(t *testing.T) {
		mockQueries := new(MockRequestReadQueries)
		mockQueries.On("GetRequestView", mock.Anything, mock.Anything, pending.ID).Return(pending, nil)

		view, err := NewRequestReadStore(mockQueries, nil).FindByID(context.Background(), pending.ID)
		require.NoError(t, err)
		assert.Nil(t, view.WinningAgencyID)
		assert.Nil(t, view.WinningAgencyName)
		assert.NotNil(t, view.Payload)
		assert.Empty(t, view.Payload)
	})

	t.Run("errors", func(t *testing.T) {
		corrupt := accepted
		corrupt.Payload = []byte(`[1,2`)

		tests := []struct {
			name     string
			row      sqlc.GetRequestViewRow
			mockErr  error
			wantKind infra.RepositoryErrorKind
		}{
			{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
			{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
			{name: "corrupt payload", row: corrupt, wantKind: infra.KindDBFailure},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				id := uuid.New()
				mockQueries := new(MockRequestReadQueries)
				mockQueries.On("GetRequestView", mock.Anything, mock.Anything, id).Return(tt.row, tt.mockErr)

				view, err := NewRequestReadStore(mockQueries, nil).FindByID(context.Background(), id)
				require.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			})
		}
	})
}

func TestRequestReadStore_ListByApplicant(t *testing.T) {
	applicant := uuid.New()
	rows := []sqlc.ListRequestsByApplicantRow{
		{ID: uuid.New(), CategoryName: "Visa processing", Status: "quoted", PendingQuotes: 2,
			CreatedAt: pgconv.TimeToPgtype(storedAt), UpdatedAt: pgconv.TimeToPgtype(storedAt)},
		{ID: uuid.New(), CategoryName: "Visa processing", Status: "accepted", WinningAgencyID: pgconv.UUIDToPgtype(uuid.New()),
			CreatedAt: pgconv.TimeToPgtype(storedAt), UpdatedAt: pgconv.TimeToPgtype(storedAt)},
	}
	mockQueries := new(MockRequestReadQueries)
	mockQueries.On("ListRequestsByApplicant", mock.Anything, mock.Anything, applicant).Return(rows, nil)

	views, err := NewRequestReadStore(mockQueries, nil).ListByApplicant(context.Background(), applicant)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].PendingQuotes)
	assert.Nil(t, views[0].WinningAgencyID)
	assert.NotNil(t, views[1].WinningAgencyID)
}

func TestRequestReadStore_HasQuoteFrom(t *testing.T) {
	requestID, agencyID := uuid.New(), uuid.New()
	params := sqlc.CountQuotesByRequestAndAgencyParams{RequestID: requestID, AgencyID: agencyID}

	tests := []struct {
		name    string
		count   int64
		mockErr error
		want    bool
		wantErr bool
	}{
		{name: "has quoted", count: 1, want: true},
		{name: "several historical quotes", count: 3, want: true},
		{name: "never quoted", count: 0, want: false},
		{name: "database error", mockErr: assert.AnError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockRequestReadQueries)
			mockQueries.On("CountQuotesByRequestAndAgency", mock.Anything, mock.Anything, params).Return(tt.count, tt.mockErr)

			got, err := NewRequestReadStore(mockQueries, nil).HasQuoteFrom(context.Background(), requestID, agencyID)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
