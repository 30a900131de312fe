package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"service-broker/internal/domain/catalog"
	"service-broker/internal/domain/eligibility"
	"service-broker/internal/infra/readstore"
	"service-broker/internal/infra/repository"
	sqlc "service-broker/internal/infra/sqlc/generated"
	"service-broker/internal/pkg/errs"
	"service-broker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads; accept and submit serialize on row locks taken inside fn
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	requestRepo *repository.RequestRepository
	quoteRepo   *repository.QuoteRepository
	catalogRepo *repository.CatalogRepository
	userRepo    *repository.UserRepository
}

func (t *pgTx) Requests() shared.RequestRepository {
	if t.requestRepo == nil {
		t.requestRepo = repository.NewRequestRepository(t.uow.q, t.dbtx)
	}
	return t.requestRepo
}

func (t *pgTx) Quotes() shared.QuoteRepository {
	if t.quoteRepo == nil {
		t.quoteRepo = repository.NewQuoteRepository(t.uow.q, t.dbtx)
	}
	return t.quoteRepo
}

func (t *pgTx) catalog() *repository.CatalogRepository {
	if t.catalogRepo == nil {
		t.catalogRepo = repository.NewCatalogRepository(t.uow.q, t.dbtx)
	}
	return t.catalogRepo
}

func (t *pgTx) Categories() shared.CategoryRepository {
	return t.catalog()
}

// Candidates reads assignments inside the transaction so eligibility is
// checked against the state the write commits with.
func (t *pgTx) Candidates() eligibility.CandidateSource {
	return t.catalog()
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx)
	}
	return t.userRepo
}

type commandReads struct {
	catalog *readstore.CatalogReadStore
	quotes  *readstore.QuoteReadStore
}

func newCommandReads(q *sqlc.Queries, db sqlc.DBTX) *commandReads {
	return &commandReads{
		catalog: readstore.NewCatalogReadStore(q, db),
		quotes:  readstore.NewQuoteReadStore(q, db),
	}
}

func (r *commandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceCategory, error) {
	return r.catalog.FindCategory(ctx, id)
}

func (r *commandReads) Candidates() eligibility.CandidateSource {
	return r.catalog
}

func (r *commandReads) QuotesExpiringBetween(ctx context.Context, from, to time.Time) ([]shared.ExpiringQuote, error) {
	return r.quotes.ExpiringBetween(ctx, from, to)
}
