package booking

import (
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

type TourRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	NumGuests *int
	Status    *Status
}

type HotelRequest struct {
	StartDate  *time.Time
	EndDate    *time.Time
	RoomTypeID *uuid.UUID
	PriceCents *int64
	Status     *Status
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

func (f *Factory) NewTourBooking(userID uuid.UUID, tour *catalog.Tour, req TourRequest) (*Booking, error) {
	if req.StartDate == nil || req.StartDate.IsZero() {
		return nil, missing("startDate")
	}
	guests := patch.Coalesce(req.NumGuests, 1)
	if guests < 1 || guests > tour.MaxPeople() {
		return nil, ErrInvalidGuests
	}
	status, err := initialStatus(req.Status)
	if err != nil {
		return nil, err
	}

	start := NormalizeDate(*req.StartDate)
	end := start
	if req.EndDate != nil && !req.EndDate.IsZero() {
		end = NormalizeDate(*req.EndDate)
		if end.Before(start) {
			return nil, ErrInvalidDateRange
		}
	}

	price := PriceTour(NewMoney(tour.AmountCents()), tour.Discount(), guests)
	details := TourDetails{
		StartDate:      start,
		EndDate:        end,
		NumGuests:      guests,
		PricePerPerson: price.PerPerson,
		Price:          price.Total,
	}

	return f.build(userID, tour.ID(), details, price.Total, tour.CommissionRate(), status), nil
}

// NewHotelBooking prices the stay at the caller-supplied price, falling back to the room
// type's list price when none is given.
func (f *Factory) NewHotelBooking(userID uuid.UUID, hotel *catalog.Hotel, req HotelRequest) (*Booking, error) {
	switch {
	case req.StartDate == nil || req.StartDate.IsZero():
		return nil, missing("startDate")
	case req.EndDate == nil || req.EndDate.IsZero():
		return nil, missing("endDate")
	case req.RoomTypeID == nil || *req.RoomTypeID == uuid.Nil:
		return nil, missing("roomTypeId")
	}

	roomType, ok := hotel.RoomType(*req.RoomTypeID)
	if !ok {
		return nil, catalog.ErrRoomTypeNotInHotel
	}
	window, err := NewDateRange(*req.StartDate, *req.EndDate)
	if err != nil {
		return nil, err
	}
	status, err := initialStatus(req.Status)
	if err != nil {
		return nil, err
	}

	price := NewMoney(roomType.PriceCents)
	if req.PriceCents != nil {
		price = NewMoney(*req.PriceCents)
	}
	if price.Cents() < 0 {
		return nil, ErrNegativePrice
	}

	details := HotelDetails{
		Window:     window,
		RoomTypeID: roomType.ID,
		Price:      price,
	}
	return f.build(userID, hotel.ID(), details, price, hotel.CommissionRate(), status), nil
}

func (f *Factory) build(userID, itemID uuid.UUID, details Details, total Money, rate float64, status Status) *Booking {
	now := f.Clock.Now()
	return &Booking{
		id:             uuid.New(),
		userID:         userID,
		itemID:         itemID,
		details:        details,
		totalPrice:     total,
		commissionRate: rate,
		commission:     Commission(total, rate),
		status:         status,
		createdAt:      now,
		updatedAt:      now,
	}
}

// a new booking may start as pending (default) or booked
func initialStatus(s *Status) (Status, error) {
	status := patch.CoalesceNonZero(s, StatusPending)
	if status != StatusPending && status != StatusBooked {
		return "", ErrInvalidStatus
	}
	return status, nil
}
