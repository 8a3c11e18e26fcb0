package queries

import (
	"context"

	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

type CustomTourQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*CustomTourView, error)
}

type CustomTourReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customtour.Request, error)
}

type customTourQueriesImpl struct {
	readStore CustomTourReadStore
}

func NewCustomTourQueries(readStore CustomTourReadStore) CustomTourQueries {
	return &customTourQueriesImpl{
		readStore: readStore,
	}
}

func (q *customTourQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*CustomTourView, error) {
	req, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !req.CanView(actor) {
		return nil, ErrForbidden
	}

	view := NewCustomTourView(req)
	return &view, nil
}
