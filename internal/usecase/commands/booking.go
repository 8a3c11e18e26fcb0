package commands

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// StatusChangeResult is returned by cancel and status updates. AlreadyFinal reports a
// benign no-op on a terminal booking.
type StatusChangeResult struct {
	Booking    *booking.Booking
	Transition booking.Transition
}

type RoomAssignmentResult struct {
	Booking        *booking.Booking
	Room           *catalog.PhysicalRoom
	PreviousRoomID *uuid.UUID
}

type BookingCommands interface {
	CreateTourBooking(ctx context.Context, userID, tourID uuid.UUID, req booking.TourRequest) (*booking.Booking, error)
	CreateHotelBooking(ctx context.Context, userID, hotelID uuid.UUID, req booking.HotelRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*StatusChangeResult, error)
	UpdateBookingStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, target booking.Status) (*StatusChangeResult, error)
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:     uow,
		factory: booking.NewFactory(clk),
		clock:   clk,
	}
}

func (uc *bookingUseCaseImpl) CreateTourBooking(ctx context.Context, userID, tourID uuid.UUID, req booking.TourRequest) (*booking.Booking, error) {
	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tour, err := tx.Reads().TourByID(ctx, tourID)
		if err != nil {
			return err
		}

		b, err := uc.factory.NewTourBooking(userID, tour, req)
		if err != nil {
			return err
		}
		details, _ := b.TourDetails()

		if err = tx.Locks().Acquire(ctx, tx.DB(), availability.TourBucket(tourID, details.StartDate)); err != nil {
			return err
		}

		existing, err := tx.Reads().TourBookingsOn(ctx, tourID, details.StartDate)
		if err != nil {
			return err
		}
		res := availability.CheckTour(tourID, tour.MaxPeople(), details.StartDate, details.NumGuests, existing)
		if err = res.Err(); err != nil {
			return err
		}

		if err = tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return enqueue(ctx, tx, shared.TopicBookingCreated, shared.NotificationEvent{
			RecipientID: userID,
			SubjectID:   b.ID(),
			Status:      b.Status().String(),
			Summary:     tour.Title(),
		}, b.CreatedAt())
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("tour booking created",
		"booking_id", created.ID(),
		"tour_id", tourID,
		"guests", created.NumGuests(),
		"total_cents", created.TotalPrice().Cents())
	return created, nil
}

func (uc *bookingUseCaseImpl) CreateHotelBooking(ctx context.Context, userID, hotelID uuid.UUID, req booking.HotelRequest) (*booking.Booking, error) {
	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		hotel, err := tx.Reads().HotelByID(ctx, hotelID)
		if err != nil {
			return err
		}

		b, err := uc.factory.NewHotelBooking(userID, hotel, req)
		if err != nil {
			return err
		}
		details, _ := b.HotelDetails()

		if err = tx.Locks().Acquire(ctx, tx.DB(), availability.HotelBucket(hotelID, details.RoomTypeID)); err != nil {
			return err
		}

		rooms, err := tx.Reads().RoomsByType(ctx, hotelID, details.RoomTypeID)
		if err != nil {
			return err
		}
		existing, err := tx.Reads().OverlappingHotelBookings(ctx, hotelID, details.RoomTypeID, details.Window)
		if err != nil {
			return err
		}
		res := availability.CheckHotel(details.RoomTypeID, details.Window, rooms, existing)
		if err = res.Err(); err != nil {
			return err
		}

		if err = tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			return err
		}
		created = b
		return enqueue(ctx, tx, shared.TopicBookingCreated, shared.NotificationEvent{
			RecipientID: userID,
			SubjectID:   b.ID(),
			Status:      b.Status().String(),
			Summary:     hotel.Name(),
		}, b.CreatedAt())
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("hotel booking created",
		"booking_id", created.ID(),
		"hotel_id", hotelID,
		"total_cents", created.TotalPrice().Cents())
	return created, nil
}

// CancelBooking is open to the booking owner and admins.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, actor user.Actor, bookingID uuid.UUID) (*StatusChangeResult, error) {
	var result *StatusChangeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if b.UserID() != actor.ID && !actor.IsAdmin() {
			return ErrForbidden
		}

		now := uc.clock.Now()
		t := b.Cancel(now)
		result = &StatusChangeResult{Booking: b, Transition: t}
		if !t.Changed {
			return nil
		}
		return uc.persistTransition(ctx, tx, b, t, shared.TopicBookingCancelled, now)
	})
	if err != nil {
		return nil, translate(err)
	}
	logTransition("booking cancel", bookingID, result.Transition)
	return result, nil
}

func (uc *bookingUseCaseImpl) UpdateBookingStatus(ctx context.Context, actor user.Actor, bookingID uuid.UUID, target booking.Status) (*StatusChangeResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if !target.IsValid() {
		return nil, booking.ErrInvalidStatus
	}

	var result *StatusChangeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		t, err := b.UpdateStatus(target, now)
		if err != nil {
			return err
		}
		result = &StatusChangeResult{Booking: b, Transition: t}
		if !t.Changed {
			return nil
		}
		return uc.persistTransition(ctx, tx, b, t, shared.TopicBookingStatusChanged, now)
	})
	if err != nil {
		return nil, translate(err)
	}
	logTransition("booking status update", bookingID, result.Transition)
	return result, nil
}

// persistTransition releases any room the transition detached, then writes the booking.
func (uc *bookingUseCaseImpl) persistTransition(ctx context.Context, tx shared.Tx, b *booking.Booking, t booking.Transition, topic string, now time.Time) error {
	if t.ReleasedRoomID != nil {
		if err := releaseRoom(ctx, tx, *t.ReleasedRoomID, b.ID(), now); err != nil {
			return err
		}
	}
	if err := tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
		return err
	}
	return enqueue(ctx, tx, topic, shared.NotificationEvent{
		RecipientID: b.UserID(),
		SubjectID:   b.ID(),
		Status:      t.To.String(),
	}, now)
}

// releaseRoom frees roomID if bookingID still holds it. A room already freed elsewhere is
// left alone.
func releaseRoom(ctx context.Context, tx shared.Tx, roomID, bookingID uuid.UUID, now time.Time) error {
	rooms, err := tx.Rooms().LockByIDs(ctx, tx.DB(), roomID)
	if err != nil {
		return err
	}
	room, ok := rooms[roomID]
	if !ok || !room.IsHeldBy(bookingID) {
		slog.Warn("assigned room not held by booking, skipping release", "room_id", roomID, "booking_id", bookingID)
		return nil
	}
	if err = room.Release(bookingID, now); err != nil {
		return err
	}
	return tx.Rooms().UpdateState(ctx, tx.DB(), room)
}

func logTransition(op string, bookingID uuid.UUID, t booking.Transition) {
	switch {
	case t.AlreadyFinal:
		slog.Info(op+" ignored, booking already final", "booking_id", bookingID, "status", t.From)
	case t.Changed:
		slog.Info(op, "booking_id", bookingID, "from", t.From, "to", t.To, "released_room_id", t.ReleasedRoomID)
	}
}
