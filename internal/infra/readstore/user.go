package readstore

import (
	"context"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUser(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlstore.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlstore.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return u, nil
}
