package converter

import (
	"fmt"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlstore.CreateBookingParams {
	params := sqlstore.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		Type:            b.Type().String(),
		ItemID:          b.ItemID(),
		NumGuests:       int32(b.NumGuests()), // #nosec G115 -- the factory caps guests at the tour's integer max_people
		TotalPriceCents: b.TotalPrice().Cents(),
		CommissionRate:  b.CommissionRate(),
		CommissionCents: b.Commission().Cents(),
		Status:          b.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	switch d := b.Details().(type) {
	case booking.TourDetails:
		perPerson := d.PricePerPerson.Cents()
		params.StartDate = pgconv.DateToPgtype(d.StartDate)
		params.EndDate = pgconv.DateToPgtype(d.EndDate)
		params.PricePerPersonCents = pgconv.Int64PtrToPgtype(&perPerson)
		params.RoomTypeID = pgtype.UUID{Valid: false}
	case booking.HotelDetails:
		params.StartDate = pgconv.DateToPgtype(d.Window.Start())
		params.EndDate = pgconv.DateToPgtype(d.Window.End())
		params.RoomTypeID = pgconv.UUIDToPgtype(d.RoomTypeID)
		params.PricePerPersonCents = pgtype.Int8{Valid: false}
	}

	return params
}

func BookingToStateParams(b *booking.Booking) sqlstore.UpdateBookingStateParams {
	return sqlstore.UpdateBookingStateParams{
		ID:             b.ID(),
		Status:         b.Status().String(),
		AssignedRoomID: pgconv.UUIDPtrToPgtype(b.AssignedRoomID()),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow rebuilds the aggregate. Stored statuses are canonical; anything else is
// a corrupt row and reported as such.
func BookingFromRow(row sqlstore.Bookings) (*booking.Booking, error) {
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("booking %s: %w: %q", row.ID, booking.ErrInvalidStatus, row.Status)
	}

	rate, err := pgconv.Float64FromNumeric(row.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("booking %s: commission rate: %w", row.ID, err)
	}

	total := booking.NewMoney(row.TotalPriceCents)
	var details booking.Details

	switch booking.Type(row.Type) {
	case booking.TypeTour:
		perPerson := int64(0)
		if v := pgconv.Int64PtrFromPgtype(row.PricePerPersonCents); v != nil {
			perPerson = *v
		}
		details = booking.TourDetails{
			StartDate:      pgconv.DateFromPgtype(row.StartDate),
			EndDate:        pgconv.DateFromPgtype(row.EndDate),
			NumGuests:      int(row.NumGuests),
			PricePerPerson: booking.NewMoney(perPerson),
			Price:          total,
		}
	case booking.TypeHotel:
		window, werr := booking.NewDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate))
		if werr != nil {
			return nil, fmt.Errorf("booking %s: %w", row.ID, werr)
		}
		roomTypeID := pgconv.UUIDPtrFromPgtype(row.RoomTypeID)
		if roomTypeID == nil {
			return nil, fmt.Errorf("booking %s: hotel booking without room type", row.ID)
		}
		details = booking.HotelDetails{
			Window:     window,
			RoomTypeID: *roomTypeID,
			Price:      total,
		}
	default:
		return nil, fmt.Errorf("booking %s: %w: %q", row.ID, booking.ErrInvalidType, row.Type)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.ItemID,
		details,
		pgconv.UUIDPtrFromPgtype(row.AssignedRoomID),
		total,
		rate,
		booking.NewMoney(row.CommissionCents),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlstore.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
