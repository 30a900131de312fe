package shared

import (
	"context"
	"time"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/domain/eligibility"
	"service-broker/internal/domain/quote"
	"service-broker/internal/domain/request"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Requests() RequestRepository
	Quotes() QuoteRepository
	Categories() CategoryRepository
	Candidates() eligibility.CandidateSource
	Users() UserRepository
}

type CommandReads interface {
	CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceCategory, error)
	Candidates() eligibility.CandidateSource
	QuotesExpiringBetween(ctx context.Context, from, to time.Time) ([]ExpiringQuote, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *request.Request) error
	FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error)
	// LockForDecision takes an exclusive row lock; accept, reject and
	// lifecycle transitions on the same request serialize behind it.
	LockForDecision(ctx context.Context, id uuid.UUID) (*request.Request, error)
	// LockForQuoting takes a shared key lock: concurrent submitters proceed,
	// an in-flight decision blocks them.
	LockForQuoting(ctx context.Context, id uuid.UUID) (*request.Request, error)
	Update(ctx context.Context, req *request.Request) error
	// AssignWinner persists an accepted request only if no winner is stored yet.
	// It fails with request.ErrWinnerAlreadySet otherwise.
	AssignWinner(ctx context.Context, req *request.Request) error
}

type QuoteRepository interface {
	Create(ctx context.Context, q *quote.Quote) error
	FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
	FindPendingForAgency(ctx context.Context, requestID, agencyID uuid.UUID) (*quote.Quote, error)
	LockByRequest(ctx context.Context, requestID uuid.UUID) ([]*quote.Quote, error)
	UpdateTerms(ctx context.Context, q *quote.Quote) error
	UpdateStatus(ctx context.Context, q *quote.Quote) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceCategory, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
