//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"service-broker/internal/infra"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows is not found", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "anything else", err: errors.New("boom"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", c.err, c.kind...)

			assert.True(t, infra.IsKind(err, c.want))
			assert.ErrorIs(t, err, c.err)
		})
	}

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	})
}
