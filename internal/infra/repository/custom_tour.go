package repository

import (
	"context"

	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type CustomTourWriteQueries interface {
	CreateCustomTourRequest(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateCustomTourRequestParams) error
	GetCustomTourRequestForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.CustomTourRequests, error)
	ListCustomTourQuotes(ctx context.Context, db sqlstore.DBTX, requestID uuid.UUID) ([]sqlstore.CustomTourQuotes, error)
	ListCustomTourBargains(ctx context.Context, db sqlstore.DBTX, requestID uuid.UUID) ([]sqlstore.CustomTourBargains, error)
	UpdateCustomTourRequest(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateCustomTourRequestParams) (int64, error)
	UpsertCustomTourQuote(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpsertCustomTourQuoteParams) error
	InsertCustomTourBargain(ctx context.Context, db sqlstore.DBTX, arg sqlstore.InsertCustomTourBargainParams) error
}

type CustomTourRepository struct {
	queries CustomTourWriteQueries
	db      sqlstore.DBTX
}

func NewCustomTourRepository(queries CustomTourWriteQueries, db sqlstore.DBTX) *CustomTourRepository {
	return &CustomTourRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomTourRepository) Create(ctx context.Context, tx sqlstore.DBTX, req *customtour.Request) error {
	if err := r.queries.CreateCustomTourRequest(ctx, tx, converter.CustomTourToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create custom tour request", err)
	}
	return nil
}

// FindForUpdate locks the request row and loads its quotes and bargains under that lock.
func (r *CustomTourRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*customtour.Request, error) {
	row, err := r.queries.GetCustomTourRequestForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock custom tour request", err)
	}

	quotes, err := r.queries.ListCustomTourQuotes(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list custom tour quotes", err)
	}

	bargains, err := r.queries.ListCustomTourBargains(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list custom tour bargains", err)
	}

	req, err := converter.CustomTourFromRows(row, quotes, bargains)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert custom tour request", err, infra.KindDBFailure)
	}

	return req, nil
}

// Save writes the request row, upserts every quote and appends bargains not yet stored.
func (r *CustomTourRepository) Save(ctx context.Context, tx sqlstore.DBTX, req *customtour.Request) error {
	affected, err := r.queries.UpdateCustomTourRequest(ctx, tx, converter.CustomTourToUpdateParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update custom tour request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("custom tour request not found", nil, infra.KindNotFound)
	}

	for _, q := range req.Quotes() {
		if err := r.queries.UpsertCustomTourQuote(ctx, tx, converter.QuoteToUpsertParams(req.ID(), q)); err != nil {
			return infra.WrapRepoErr("failed to save custom tour quote", err)
		}
	}

	for _, b := range req.Bargains() {
		if err := r.queries.InsertCustomTourBargain(ctx, tx, converter.BargainToInsertParams(req.ID(), b)); err != nil {
			return infra.WrapRepoErr("failed to save custom tour bargain", err)
		}
	}

	return nil
}
