package queries

import (
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
)

var (
	ErrNotFound  = errs.New("not found")
	ErrForbidden = errs.New("forbidden")
)

func translate(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrNotFound)
	}
	return err
}
