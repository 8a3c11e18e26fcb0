package repository

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateBookingParams) (sqlstore.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Bookings, error)
	UpdateBookingState(ctx context.Context, db sqlstore.DBTX, arg sqlstore.UpdateBookingStateParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlstore.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlstore.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error {
	params := converter.BookingToCreateParams(b)

	if _, err := r.queries.CreateBooking(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	return nil
}

// FindForUpdate row-locks the booking until the surrounding transaction ends.
func (r *BookingRepository) FindForUpdate(ctx context.Context, tx sqlstore.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}

	return b, nil
}

func (r *BookingRepository) UpdateState(ctx context.Context, tx sqlstore.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingState(ctx, tx, converter.BookingToStateParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}
