//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx, so fixtures can seed
// inside a test transaction as well as on the shared pool.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// testPasswordHash is bcrypt("password123").
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string, agencyID *uuid.UUID) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, role, agency_id, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING`,
		userID, email, testPasswordHash, role, agencyID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestAgency(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "INSERT INTO agencies (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestCategory(t *testing.T, db DBLike, name, rate, policy string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO service_categories (name, commission_rate, assignment_policy) VALUES ($1, $2::numeric, $3) RETURNING id",
		name, rate, policy).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestAssignment assigns an agency to a category; no countries means global.
func CreateTestAssignment(t *testing.T, db DBLike, agencyID, categoryID uuid.UUID, countries ...string) uuid.UUID {
	t.Helper()

	if countries == nil {
		countries = []string{}
	}
	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO agency_assignments (agency_id, category_id, countries) VALUES ($1, $2, $3) RETURNING id",
		agencyID, categoryID, countries).Scan(&id)
	require.NoError(t, err)
	return id
}

func DeactivateAssignment(t *testing.T, db DBLike, assignmentID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE agency_assignments SET is_active = false WHERE id = $1", assignmentID)
	require.NoError(t, err)
}

func CreateTestResource(t *testing.T, db DBLike, categoryID, ownerID uuid.UUID, primary bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO external_resources (name, category_id, owner_agency_id, is_primary) VALUES ('resource', $1, $2, $3) RETURNING id",
		categoryID, ownerID, primary).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
