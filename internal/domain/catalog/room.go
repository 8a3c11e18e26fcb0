package catalog

import (
	"time"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) String() string {
	return string(s)
}

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	default:
		return false
	}
}

func ParseRoomStatus(s string) (RoomStatus, error) {
	status := RoomStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidRoomStatus
	}
	return status, nil
}

// PhysicalRoom is one assignable room. Its status and owner change only through
// Occupy, Release and SetMaintenance.
type PhysicalRoom struct {
	id               uuid.UUID
	hotelID          uuid.UUID
	roomTypeID       uuid.UUID
	number           string
	status           RoomStatus
	currentBookingID *uuid.UUID
	updatedAt        time.Time
}

func ReconstructPhysicalRoom(
	id, hotelID, roomTypeID uuid.UUID,
	number string,
	status RoomStatus,
	currentBookingID *uuid.UUID,
	updatedAt time.Time,
) *PhysicalRoom {
	return &PhysicalRoom{
		id:               id,
		hotelID:          hotelID,
		roomTypeID:       roomTypeID,
		number:           number,
		status:           status,
		currentBookingID: currentBookingID,
		updatedAt:        updatedAt,
	}
}

// Occupy binds the room to bookingID. Re-occupying by the same booking is a no-op.
func (r *PhysicalRoom) Occupy(bookingID uuid.UUID, now time.Time) error {
	switch r.status {
	case RoomMaintenance:
		return ErrRoomUnavailable
	case RoomOccupied:
		if r.currentBookingID != nil && *r.currentBookingID == bookingID {
			return nil
		}
		return ErrRoomOccupied
	}

	id := bookingID
	r.status = RoomOccupied
	r.currentBookingID = &id
	r.updatedAt = now
	return nil
}

// Release frees the room if bookingID still holds it.
func (r *PhysicalRoom) Release(bookingID uuid.UUID, now time.Time) error {
	if !r.IsHeldBy(bookingID) {
		return ErrRoomNotHeldByBooking
	}
	r.status = RoomAvailable
	r.currentBookingID = nil
	r.updatedAt = now
	return nil
}

func (r *PhysicalRoom) SetMaintenance(enabled bool, now time.Time) error {
	if r.status == RoomOccupied {
		return ErrRoomOccupied
	}
	if enabled {
		r.status = RoomMaintenance
	} else {
		r.status = RoomAvailable
	}
	r.updatedAt = now
	return nil
}

func (r *PhysicalRoom) IsHeldBy(bookingID uuid.UUID) bool {
	return r.status == RoomOccupied && r.currentBookingID != nil && *r.currentBookingID == bookingID
}

func (r *PhysicalRoom) IsBookable() bool {
	return r.status != RoomMaintenance
}

func (r *PhysicalRoom) ID() uuid.UUID                { return r.id }
func (r *PhysicalRoom) HotelID() uuid.UUID           { return r.hotelID }
func (r *PhysicalRoom) RoomTypeID() uuid.UUID        { return r.roomTypeID }
func (r *PhysicalRoom) Number() string               { return r.number }
func (r *PhysicalRoom) Status() RoomStatus           { return r.status }
func (r *PhysicalRoom) CurrentBookingID() *uuid.UUID { return r.currentBookingID }
func (r *PhysicalRoom) UpdatedAt() time.Time         { return r.updatedAt }
