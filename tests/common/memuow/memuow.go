//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for command tests.
// Transactions run one at a time and only publish their writes on success,
// which is the isolation the row locks give the Postgres implementation for
// work on a single request.
package memuow

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/domain/eligibility"
	"service-broker/internal/domain/quote"
	"service-broker/internal/domain/request"
	"service-broker/internal/infra"
	"service-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRow = errors.New("no rows in result set")

type Store struct {
	mu         sync.Mutex
	requests   map[uuid.UUID]request.Request
	quotes     map[uuid.UUID]quote.Quote
	categories map[uuid.UUID]*catalog.ServiceCategory
	candidates map[uuid.UUID]*eligibility.Candidates
	lastLogins map[uuid.UUID]int

	// Commits counts successful transactions.
	Commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		requests:   make(map[uuid.UUID]request.Request),
		quotes:     make(map[uuid.UUID]quote.Quote),
		categories: make(map[uuid.UUID]*catalog.ServiceCategory),
		candidates: make(map[uuid.UUID]*eligibility.Candidates),
		lastLogins: make(map[uuid.UUID]int),
	}
}

// Seeding helpers, outside any transaction.

func (s *Store) AddCategory(c *catalog.ServiceCategory, candidates *eligibility.Candidates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[c.ID()] = c
	if candidates == nil {
		candidates = &eligibility.Candidates{}
	}
	s.candidates[c.ID()] = candidates
}

// SetCandidates swaps a category's live configuration, e.g. to revoke an assignment.
func (s *Store) SetCandidates(categoryID uuid.UUID, candidates *eligibility.Candidates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[categoryID] = candidates
}

func (s *Store) PutRequest(r *request.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID()] = *r
}

func (s *Store) PutQuote(q *quote.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.ID()] = *q
}

func (s *Store) Request(id uuid.UUID) (*request.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (s *Store) Quote(id uuid.UUID) (*quote.Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return nil, false
	}
	return &q, true
}

// QuotesFor returns the committed quotes of a request ordered by creation.
func (s *Store) QuotesFor(requestID uuid.UUID) []*quote.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quotesFor(s.quotes, requestID)
}

func (s *Store) LastLoginUpdates(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastLogins[userID]
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{
		store:      s,
		requests:   make(map[uuid.UUID]request.Request),
		quotes:     make(map[uuid.UUID]quote.Quote),
		lastLogins: make(map[uuid.UUID]int),
	}
	if err := fn(ctx, t); err != nil {
		return err
	}
	for id, r := range t.requests {
		s.requests[id] = r
	}
	for id, q := range t.quotes {
		s.quotes[id] = q
	}
	for id, n := range t.lastLogins {
		s.lastLogins[id] += n
	}
	s.Commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return reads{store: s}
}

func (s *Store) quotesFor(src map[uuid.UUID]quote.Quote, requestID uuid.UUID) []*quote.Quote {
	var out []*quote.Quote
	for _, q := range src {
		if q.RequestID() == requestID {
			out = append(out, &q)
		}
	}
	slices.SortFunc(out, func(a, b *quote.Quote) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID().String(), b.ID().String())
	})
	return out
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", errNoRow, infra.KindNotFound)
}

// tx reads through its own staged writes to the committed store.
type tx struct {
	store      *Store
	requests   map[uuid.UUID]request.Request
	quotes     map[uuid.UUID]quote.Quote
	lastLogins map[uuid.UUID]int
}

func (t *tx) Requests() shared.RequestRepository      { return requestRepo{t} }
func (t *tx) Quotes() shared.QuoteRepository          { return quoteRepo{t} }
func (t *tx) Categories() shared.CategoryRepository   { return categoryRepo{t.store} }
func (t *tx) Candidates() eligibility.CandidateSource { return candidateSource{t.store} }
func (t *tx) Users() shared.UserRepository            { return userRepo{t} }

func (t *tx) request(id uuid.UUID) (request.Request, bool) {
	if r, ok := t.requests[id]; ok {
		return r, true
	}
	r, ok := t.store.requests[id]
	return r, ok
}

func (t *tx) mergedQuotes() map[uuid.UUID]quote.Quote {
	merged := make(map[uuid.UUID]quote.Quote, len(t.store.quotes)+len(t.quotes))
	for id, q := range t.store.quotes {
		merged[id] = q
	}
	for id, q := range t.quotes {
		merged[id] = q
	}
	return merged
}

type requestRepo struct{ t *tx }

func (r requestRepo) Create(_ context.Context, req *request.Request) error {
	if _, ok := r.t.request(req.ID()); ok {
		return infra.WrapRepoErr("request exists", errors.New("duplicate key"), infra.KindDuplicateKey)
	}
	r.t.requests[req.ID()] = *req
	return nil
}

func (r requestRepo) FindByID(_ context.Context, id uuid.UUID) (*request.Request, error) {
	req, ok := r.t.request(id)
	if !ok {
		return nil, notFound("request")
	}
	return &req, nil
}

func (r requestRepo) LockForDecision(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	return r.FindByID(ctx, id)
}

func (r requestRepo) LockForQuoting(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	return r.FindByID(ctx, id)
}

func (r requestRepo) Update(_ context.Context, req *request.Request) error {
	if _, ok := r.t.request(req.ID()); !ok {
		return notFound("request")
	}
	r.t.requests[req.ID()] = *req
	return nil
}

func (r requestRepo) AssignWinner(_ context.Context, req *request.Request) error {
	stored, ok := r.t.request(req.ID())
	if !ok {
		return notFound("request")
	}
	if stored.WinningAgencyID() != nil {
		return request.ErrWinnerAlreadySet
	}
	r.t.requests[req.ID()] = *req
	return nil
}

type quoteRepo struct{ t *tx }

func (r quoteRepo) Create(_ context.Context, q *quote.Quote) error {
	for _, other := range r.t.mergedQuotes() {
		if other.RequestID() == q.RequestID() && other.AgencyID() == q.AgencyID() && other.Status().IsLive() {
			return infra.WrapRepoErr("live quote exists", errors.New("duplicate key"), infra.KindDuplicateKey)
		}
	}
	r.t.quotes[q.ID()] = *q
	return nil
}

func (r quoteRepo) FindByID(_ context.Context, id uuid.UUID) (*quote.Quote, error) {
	q, ok := r.t.mergedQuotes()[id]
	if !ok {
		return nil, notFound("quote")
	}
	return &q, nil
}

func (r quoteRepo) FindPendingForAgency(_ context.Context, requestID, agencyID uuid.UUID) (*quote.Quote, error) {
	for _, q := range r.t.mergedQuotes() {
		if q.RequestID() == requestID && q.AgencyID() == agencyID && q.Status() == quote.StatusPending {
			return &q, nil
		}
	}
	return nil, notFound("quote")
}

func (r quoteRepo) LockByRequest(_ context.Context, requestID uuid.UUID) ([]*quote.Quote, error) {
	return r.t.store.quotesFor(r.t.mergedQuotes(), requestID), nil
}

func (r quoteRepo) UpdateTerms(_ context.Context, q *quote.Quote) error {
	return r.put(q)
}

func (r quoteRepo) UpdateStatus(_ context.Context, q *quote.Quote) error {
	return r.put(q)
}

func (r quoteRepo) put(q *quote.Quote) error {
	if _, ok := r.t.mergedQuotes()[q.ID()]; !ok {
		return notFound("quote")
	}
	r.t.quotes[q.ID()] = *q
	return nil
}

func (r quoteRepo) ExpireOverdue(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, q := range r.t.mergedQuotes() {
		if q.MarkExpired(now) {
			r.t.quotes[id] = q
			n++
		}
	}
	return n, nil
}

type categoryRepo struct{ store *Store }

func (r categoryRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.ServiceCategory, error) {
	c, ok := r.store.categories[id]
	if !ok {
		return nil, notFound("category")
	}
	return c, nil
}

type candidateSource struct{ store *Store }

func (c candidateSource) CandidatesForCategory(_ context.Context, categoryID uuid.UUID) (*eligibility.Candidates, error) {
	cands, ok := c.store.candidates[categoryID]
	if !ok {
		return &eligibility.Candidates{}, nil
	}
	return cands, nil
}

type userRepo struct{ t *tx }

func (r userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	r.t.lastLogins[userID]++
	return nil
}

// reads serve CommandReads outside a transaction, so they take the lock themselves.
type reads struct{ store *Store }

func (r reads) CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceCategory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return categoryRepo(r).FindByID(ctx, id)
}

func (r reads) Candidates() eligibility.CandidateSource {
	return lockedCandidates(r)
}

func (r reads) QuotesExpiringBetween(_ context.Context, from, to time.Time) ([]shared.ExpiringQuote, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []shared.ExpiringQuote
	for _, q := range r.store.quotes {
		if q.Status() != quote.StatusPending || !q.ValidUntil().After(from) || q.ValidUntil().After(to) {
			continue
		}
		req := r.store.requests[q.RequestID()]
		out = append(out, shared.ExpiringQuote{
			QuoteID:     q.ID(),
			RequestID:   q.RequestID(),
			AgencyID:    q.AgencyID(),
			ApplicantID: req.ApplicantID(),
			ValidUntil:  q.ValidUntil(),
		})
	}
	slices.SortFunc(out, func(a, b shared.ExpiringQuote) int { return a.ValidUntil.Compare(b.ValidUntil) })
	return out, nil
}

type lockedCandidates struct{ store *Store }

func (c lockedCandidates) CandidatesForCategory(ctx context.Context, categoryID uuid.UUID) (*eligibility.Candidates, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return candidateSource(c).CandidatesForCategory(ctx, categoryID)
}
