package readstore

import (
	"context"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBooking(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.Bookings, error)
	ListTourBookingsOnDate(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListTourBookingsOnDateParams) ([]sqlstore.Bookings, error)
	ListOverlappingHotelBookings(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListOverlappingHotelBookingsParams) ([]sqlstore.Bookings, error)
	ListActiveHotelBookings(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListActiveHotelBookingsParams) ([]sqlstore.Bookings, error)
	ListBookingsByUser(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListBookingsByUserParams) ([]sqlstore.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlstore.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlstore.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err, infra.KindDBFailure)
	}
	return b, nil
}

// TourBookingsOn returns non-cancelled bookings of the tour starting on date.
func (r *BookingReadStore) TourBookingsOn(ctx context.Context, tourID uuid.UUID, date time.Time) ([]*booking.Booking, error) {
	rows, err := r.queries.ListTourBookingsOnDate(ctx, r.db, sqlstore.ListTourBookingsOnDateParams{
		TourID:    tourID,
		StartDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tour bookings", err)
	}
	return toBookings(rows)
}

// OverlappingHotelBookings returns active bookings of the room type whose stay touches window.
func (r *BookingReadStore) OverlappingHotelBookings(ctx context.Context, hotelID, roomTypeID uuid.UUID, window booking.DateRange) ([]*booking.Booking, error) {
	rows, err := r.queries.ListOverlappingHotelBookings(ctx, r.db, sqlstore.ListOverlappingHotelBookingsParams{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		StartDate:  pgconv.DateToPgtype(window.Start()),
		EndDate:    pgconv.DateToPgtype(window.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping hotel bookings", err)
	}
	return toBookings(rows)
}

// ActiveHotelBookings returns every pending, booked or checked-in stay of the room type.
func (r *BookingReadStore) ActiveHotelBookings(ctx context.Context, hotelID, roomTypeID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.queries.ListActiveHotelBookings(ctx, r.db, sqlstore.ListActiveHotelBookingsParams{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active hotel bookings", err)
	}
	return toBookings(rows)
}

// ListByUser pages newest first. afterCreatedAt and afterID are the last row of the previous page.
func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, afterCreatedAt *time.Time, afterID *uuid.UUID, limit int32) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, sqlstore.ListBookingsByUserParams{
		UserID:         userID,
		AfterCreatedAt: pgconv.TimePtrToPgtype(afterCreatedAt),
		AfterID:        pgconv.UUIDPtrToPgtype(afterID),
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return toBookings(rows)
}

func toBookings(rows []sqlstore.Bookings) ([]*booking.Booking, error) {
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bookings", err, infra.KindDBFailure)
	}
	return out, nil
}
