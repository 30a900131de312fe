package commands

import (
	"service-broker/internal/infra"
	"service-broker/internal/pkg/errs"
)

var (
	ErrRequestNotFound  = errs.Wrap(errs.ErrNotFound, "request not found")
	ErrQuoteNotFound    = errs.Wrap(errs.ErrNotFound, "quote not found")
	ErrCategoryNotFound = errs.Wrap(errs.ErrNotFound, "service category not found")
)

// translateNotFound maps a repository miss onto the use case's not-found error.
func translateNotFound(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
