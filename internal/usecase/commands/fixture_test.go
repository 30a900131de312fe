//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"service-broker/internal/domain/commission"
	"service-broker/internal/pkg/clock"
	"service-broker/internal/usecase/commands"
	"service-broker/internal/usecase/shared"
	"service-broker/tests/common/builder"
	"service-broker/tests/common/memuow"
	sharedmock "service-broker/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// outbox records what the use cases dispatched.
type outbox struct {
	mu   sync.Mutex
	sent []shared.Notification
}

func (o *outbox) add(n shared.Notification) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, n)
}

func (o *outbox) ofKind(kind shared.NotificationKind) []shared.Notification {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []shared.Notification
	for _, n := range o.sent {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (o *outbox) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = nil
}

type fixture struct {
	store    *memuow.Store
	clock    *clock.MockClock
	outbox   *outbox
	requests commands.RequestCommands
	quotes   commands.QuoteCommands

	catalog   *builder.CatalogBuilder
	applicant shared.Actor
	admin     shared.Actor
}

func newFixture(t *testing.T, cb *builder.CatalogBuilder) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	box := &outbox{}
	notifier := sharedmock.NewMockNotifier(ctrl)
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n shared.Notification) error {
			box.add(n)
			return nil
		}).
		AnyTimes()

	category, err := cb.BuildCategory()
	require.NoError(t, err)
	store := memuow.New()
	store.AddCategory(category, cb.BuildCandidates())

	clk := clock.NewMockClock(baseTime)
	return &fixture{
		store:     store,
		clock:     clk,
		outbox:    box,
		requests:  commands.NewRequestCommands(store, notifier, clk),
		quotes:    commands.NewQuoteCommands(store, commission.NewDefaultCalculator(), notifier, clk),
		catalog:   cb,
		applicant: builder.NewUserBuilder().AsApplicant().BuildActor(),
		admin:     builder.NewUserBuilder().AsAdmin().BuildActor(),
	}
}

func agencyActor(agencyID uuid.UUID) shared.Actor {
	return builder.NewUserBuilder().AsAgency(agencyID).BuildActor()
}

func (f *fixture) createRequest(t *testing.T, payload map[string]any) uuid.UUID {
	t.Helper()
	res, err := f.requests.CreateRequest(context.Background(), f.applicant, commands.CreateRequestInput{
		CategoryID: f.catalog.CategoryID,
		Payload:    payload,
	})
	require.NoError(t, err)
	return res.RequestID
}

func (f *fixture) submit(t *testing.T, agencyID, requestID uuid.UUID, amount string) uuid.UUID {
	t.Helper()
	res, err := f.quotes.SubmitQuote(context.Background(), agencyActor(agencyID), requestID, terms(amount, 48*time.Hour))
	require.NoError(t, err)
	return res.QuoteID
}

func terms(amount string, validFor time.Duration) commands.SubmitQuoteInput {
	return commands.SubmitQuoteInput{
		Amount:         decimal.RequireFromString(amount),
		ProcessingDays: 5,
		ValidUntil:     baseTime.Add(validFor),
	}
}

func country(code string) map[string]any {
	return map[string]any{"destination_country": code}
}
