//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra/converter"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingBuilder reconstructs stored bookings in any state. Use booking.Factory when the
// creation rules themselves are under test.
type BookingBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ItemID         uuid.UUID
	Type           booking.Type
	StartDate      time.Time
	EndDate        time.Time
	NumGuests      int
	RoomTypeID     uuid.UUID
	AssignedRoomID *uuid.UUID
	PriceCents     int64
	CommissionRate float64
	Status         booking.Status
	CreatedAt      time.Time
}

func NewTourBookingBuilder(tourID uuid.UUID) *BookingBuilder {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		ItemID:         tourID,
		Type:           booking.TypeTour,
		StartDate:      start,
		EndDate:        start,
		NumGuests:      1,
		PriceCents:     10000,
		CommissionRate: 10,
		Status:         booking.StatusBooked,
		CreatedAt:      time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func NewHotelBookingBuilder(hotelID, roomTypeID uuid.UUID) *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		ItemID:         hotelID,
		Type:           booking.TypeHotel,
		StartDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		NumGuests:      1,
		RoomTypeID:     roomTypeID,
		PriceCents:     20000,
		CommissionRate: 15,
		Status:         booking.StatusBooked,
		CreatedAt:      time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.NumGuests = n
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithRoom(roomID uuid.UUID) *BookingBuilder {
	id := roomID
	b.AssignedRoomID = &id
	return b
}

func (b *BookingBuilder) CreatedAtTime(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	total := booking.NewMoney(b.PriceCents)
	var details booking.Details
	if b.Type == booking.TypeHotel {
		window, err := booking.NewDateRange(b.StartDate, b.EndDate)
		if err != nil {
			panic(err)
		}
		details = booking.HotelDetails{Window: window, RoomTypeID: b.RoomTypeID, Price: total}
	} else {
		perPerson := booking.NewMoney(b.PriceCents / int64(max(b.NumGuests, 1)))
		details = booking.TourDetails{
			StartDate:      booking.NormalizeDate(b.StartDate),
			EndDate:        booking.NormalizeDate(b.EndDate),
			NumGuests:      b.NumGuests,
			PricePerPerson: perPerson,
			Price:          total,
		}
	}

	return booking.ReconstructBooking(
		b.ID, b.UserID, b.ItemID,
		details,
		b.AssignedRoomID,
		total,
		b.CommissionRate,
		booking.Commission(total, b.CommissionRate),
		b.Status,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlstore.Bookings {
	params := converter.BookingToCreateParams(b.BuildDomain())
	var assigned pgtype.UUID
	if b.AssignedRoomID != nil {
		assigned = pgtype.UUID{Bytes: *b.AssignedRoomID, Valid: true}
	}
	return sqlstore.Bookings{
		ID:                  params.ID,
		UserID:              params.UserID,
		Type:                params.Type,
		ItemID:              params.ItemID,
		RoomTypeID:          params.RoomTypeID,
		StartDate:           params.StartDate,
		EndDate:             params.EndDate,
		NumGuests:           params.NumGuests,
		PricePerPersonCents: params.PricePerPersonCents,
		TotalPriceCents:     params.TotalPriceCents,
		CommissionRate:      Numeric(params.CommissionRate),
		CommissionCents:     params.CommissionCents,
		Status:              params.Status,
		AssignedRoomID:      assigned,
		CreatedAt:           params.CreatedAt,
		UpdatedAt:           params.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := queries.NewBookingView(b.BuildDomain())
	return &view
}
