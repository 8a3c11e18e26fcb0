package commands

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomCommands interface {
	AssignRoom(ctx context.Context, actor user.Actor, bookingID, roomID uuid.UUID) (*RoomAssignmentResult, error)
	SetRoomMaintenance(ctx context.Context, actor user.Actor, roomID uuid.UUID, enabled bool) (*catalog.PhysicalRoom, error)
}

type roomUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	checksIn bool
}

func NewRoomCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) RoomCommands {
	return &roomUseCaseImpl{
		uow:      uow,
		clock:    clk,
		checksIn: cfg.Booking.RoomAssignmentChecksIn,
	}
}

// AssignRoom binds a physical room to a hotel booking. The booking row is locked first,
// then every room involved in id order; a previously held room is freed in the same
// transaction before the new one is written.
func (uc *roomUseCaseImpl) AssignRoom(ctx context.Context, actor user.Actor, bookingID, roomID uuid.UUID) (*RoomAssignmentResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	var result *RoomAssignmentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			return err
		}
		if err = b.CanAssignRoom(); err != nil {
			return err
		}
		details, _ := b.HotelDetails()

		ids := []uuid.UUID{roomID}
		if current := b.AssignedRoomID(); current != nil && *current != roomID {
			ids = append(ids, *current)
		}
		rooms, err := tx.Rooms().LockByIDs(ctx, tx.DB(), ids...)
		if err != nil {
			return err
		}
		target, ok := rooms[roomID]
		if !ok {
			return errs.Wrapf(ErrNotFound, "room %s", roomID)
		}
		if target.HotelID() != b.ItemID() || target.RoomTypeID() != details.RoomTypeID {
			return catalog.ErrRoomNotInRoomType
		}

		now := uc.clock.Now()
		if err = target.Occupy(b.ID(), now); err != nil {
			return err
		}
		previous, err := b.AssignRoom(roomID, uc.checksIn, now)
		if err != nil {
			return err
		}

		if previous != nil {
			if prevRoom, held := rooms[*previous]; held && prevRoom.IsHeldBy(b.ID()) {
				if err = prevRoom.Release(b.ID(), now); err != nil {
					return err
				}
				if err = tx.Rooms().UpdateState(ctx, tx.DB(), prevRoom); err != nil {
					return err
				}
			}
		}
		if err = tx.Rooms().UpdateState(ctx, tx.DB(), target); err != nil {
			return err
		}
		if err = tx.Bookings().UpdateState(ctx, tx.DB(), b); err != nil {
			return err
		}

		result = &RoomAssignmentResult{Booking: b, Room: target, PreviousRoomID: previous}
		return enqueue(ctx, tx, shared.TopicRoomAssigned, shared.NotificationEvent{
			RecipientID: b.UserID(),
			SubjectID:   b.ID(),
			Status:      b.Status().String(),
			Summary:     "Room " + target.Number(),
		}, now)
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("room assigned",
		"booking_id", bookingID,
		"room_id", roomID,
		"previous_room_id", result.PreviousRoomID,
		"status", result.Booking.Status())
	return result, nil
}

// SetRoomMaintenance takes the hotel admission lock for the room's type because the
// bookable room count changes. A room is only withdrawn when the rooms left still cover
// every active stay of the type.
func (uc *roomUseCaseImpl) SetRoomMaintenance(ctx context.Context, actor user.Actor, roomID uuid.UUID, enabled bool) (*catalog.PhysicalRoom, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	var updated *catalog.PhysicalRoom
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().RoomByID(ctx, roomID)
		if err != nil {
			return err
		}
		if err = tx.Locks().Acquire(ctx, tx.DB(), availability.HotelBucket(snapshot.HotelID(), snapshot.RoomTypeID())); err != nil {
			return err
		}

		rooms, err := tx.Rooms().LockByIDs(ctx, tx.DB(), roomID)
		if err != nil {
			return err
		}
		room, ok := rooms[roomID]
		if !ok {
			return errs.Wrapf(ErrNotFound, "room %s", roomID)
		}
		if enabled && room.Status() == catalog.RoomAvailable {
			if err = checkWithdrawal(ctx, tx, room); err != nil {
				return err
			}
		}
		if err = room.SetMaintenance(enabled, uc.clock.Now()); err != nil {
			return err
		}
		updated = room
		return tx.Rooms().UpdateState(ctx, tx.DB(), room)
	})
	if err != nil {
		return nil, translate(err)
	}

	slog.Info("room maintenance toggled", "room_id", roomID, "maintenance", enabled)
	return updated, nil
}

func checkWithdrawal(ctx context.Context, tx shared.Tx, room *catalog.PhysicalRoom) error {
	rooms, err := tx.Reads().RoomsByType(ctx, room.HotelID(), room.RoomTypeID())
	if err != nil {
		return err
	}
	active, err := tx.Reads().ActiveHotelBookings(ctx, room.HotelID(), room.RoomTypeID())
	if err != nil {
		return err
	}
	res := availability.CheckRoomWithdrawal(room.ID(), room.RoomTypeID(), rooms, active)
	if err = res.Err(); err != nil {
		return errs.Wrapf(err, "%d stays overlap, %d rooms would remain", res.PeakOverlap, res.RemainingRooms)
	}
	return nil
}
