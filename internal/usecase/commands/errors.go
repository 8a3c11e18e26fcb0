package commands

import (
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

var (
	ErrNotFound                = errs.New("not found")
	ErrForbidden               = errs.New("forbidden")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// translate marks repository failures with the command-level identity. Domain errors pass
// through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	// a dangling reference, e.g. an unknown guide id, is reported like a missing row
	if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, ErrNotFound)
	}
	var repoErr infra.RepositoryError
	if errs.As(err, &repoErr) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return err
}
