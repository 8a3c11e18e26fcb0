package queries

import (
	"context"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AvailabilityQueries answers "would this booking be admitted right now". The answer is advisory:
// no lock is held, so a later create may still be refused.
type AvailabilityQueries interface {
	TourAvailability(ctx context.Context, tourID uuid.UUID, date time.Time, guests int) (*TourAvailabilityView, error)
	HotelAvailability(ctx context.Context, hotelID, roomTypeID uuid.UUID, start, end time.Time) (*HotelAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow: uow,
	}
}

func (q *availabilityQueriesImpl) TourAvailability(ctx context.Context, tourID uuid.UUID, date time.Time, guests int) (*TourAvailabilityView, error) {
	if date.IsZero() {
		return nil, booking.ErrMissingFields
	}
	if guests < 1 {
		return nil, booking.ErrInvalidGuests
	}
	day := booking.NormalizeDate(date)

	var view *TourAvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		tour, err := reads.TourByID(ctx, tourID)
		if err != nil {
			return err
		}
		if guests > tour.MaxPeople() {
			return booking.ErrInvalidGuests
		}
		existing, err := reads.TourBookingsOn(ctx, tourID, day)
		if err != nil {
			return err
		}

		res := availability.CheckTour(tourID, tour.MaxPeople(), day, guests, existing)
		view = &TourAvailabilityView{
			TourID:    tourID,
			Date:      day,
			MaxPeople: tour.MaxPeople(),
			Booked:    res.Occupancy,
			Available: res.Available,
			Requested: guests,
			Admitted:  res.Admitted,
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) HotelAvailability(ctx context.Context, hotelID, roomTypeID uuid.UUID, start, end time.Time) (*HotelAvailabilityView, error) {
	if roomTypeID == uuid.Nil || start.IsZero() || end.IsZero() {
		return nil, booking.ErrMissingFields
	}
	window, err := booking.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	var view *HotelAvailabilityView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		hotel, err := reads.HotelByID(ctx, hotelID)
		if err != nil {
			return err
		}
		if _, ok := hotel.RoomType(roomTypeID); !ok {
			return catalog.ErrRoomTypeNotInHotel
		}

		rooms, err := reads.RoomsByType(ctx, hotelID, roomTypeID)
		if err != nil {
			return err
		}
		existing, err := reads.OverlappingHotelBookings(ctx, hotelID, roomTypeID, window)
		if err != nil {
			return err
		}

		res := availability.CheckHotel(roomTypeID, window, rooms, existing)
		view = &HotelAvailabilityView{
			HotelID:     hotelID,
			RoomTypeID:  roomTypeID,
			StartDate:   window.Start(),
			EndDate:     window.End(),
			TotalRooms:  res.TotalRooms,
			Overlapping: res.Overlapping,
			Available:   res.Available(),
			Admitted:    res.Admitted,
			Reason:      string(res.Reason),
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return view, nil
}
