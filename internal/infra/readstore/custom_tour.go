package readstore

import (
	"context"

	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type CustomTourReadQueries interface {
	GetCustomTourRequest(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.CustomTourRequests, error)
	ListCustomTourQuotes(ctx context.Context, db sqlstore.DBTX, requestID uuid.UUID) ([]sqlstore.CustomTourQuotes, error)
	ListCustomTourBargains(ctx context.Context, db sqlstore.DBTX, requestID uuid.UUID) ([]sqlstore.CustomTourBargains, error)
}

type CustomTourReadStore struct {
	queries CustomTourReadQueries
	db      sqlstore.DBTX
}

func NewCustomTourReadStore(queries CustomTourReadQueries, db sqlstore.DBTX) *CustomTourReadStore {
	return &CustomTourReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomTourReadStore) FindByID(ctx context.Context, id uuid.UUID) (*customtour.Request, error) {
	row, err := r.queries.GetCustomTourRequest(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find custom tour request", err)
	}

	quotes, err := r.queries.ListCustomTourQuotes(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list custom tour quotes", err)
	}

	bargains, err := r.queries.ListCustomTourBargains(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list custom tour bargains", err)
	}

	req, err := converter.CustomTourFromRows(row, quotes, bargains)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert custom tour request", err, infra.KindDBFailure)
	}
	return req, nil
}
