package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id             uuid.UUID
	userID         uuid.UUID
	itemID         uuid.UUID
	details        Details
	assignedRoomID *uuid.UUID
	totalPrice     Money
	commissionRate float64
	commission     Money
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func ReconstructBooking(
	id, userID, itemID uuid.UUID,
	details Details,
	assignedRoomID *uuid.UUID,
	totalPrice Money,
	commissionRate float64,
	commission Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		userID:         userID,
		itemID:         itemID,
		details:        details,
		assignedRoomID: assignedRoomID,
		totalPrice:     totalPrice,
		commissionRate: commissionRate,
		commission:     commission,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Transition describes the outcome of a status change request.
type Transition struct {
	From    Status
	To      Status
	Changed bool
	// AlreadyFinal is set when the request hit a terminal booking and nothing was written.
	AlreadyFinal   bool
	ReleasedRoomID *uuid.UUID
}

// Cancel moves a pending or booked booking to cancel. Any other state is reported as
// AlreadyFinal without mutation, so repeated calls are harmless.
func (b *Booking) Cancel(now time.Time) Transition {
	t := Transition{From: b.status, To: b.status}
	if !b.status.Cancellable() {
		t.AlreadyFinal = true
		return t
	}
	b.status = StatusCancel
	b.updatedAt = now
	t.To = StatusCancel
	t.Changed = true
	t.ReleasedRoomID = b.detachRoom()
	return t
}

// UpdateStatus applies an administrative transition. Reaching complete or cancel detaches the
// assigned room; the caller releases it.
func (b *Booking) UpdateStatus(target Status, now time.Time) (Transition, error) {
	t := Transition{From: b.status, To: b.status}
	if !target.IsValid() {
		return t, ErrInvalidStatus
	}
	if b.status.IsTerminal() {
		t.AlreadyFinal = true
		return t, nil
	}
	if target == b.status {
		return t, nil
	}
	if !b.status.CanTransitionTo(target) {
		return t, ErrInvalidTransition
	}

	b.status = target
	b.updatedAt = now
	t.To = target
	t.Changed = true
	if target.IsTerminal() {
		t.ReleasedRoomID = b.detachRoom()
	}
	return t, nil
}

// AssignRoom binds roomID and returns the previously held room, if it differs.
// With checkIn set, a pending or booked booking moves to checkedIn.
func (b *Booking) AssignRoom(roomID uuid.UUID, checkIn bool, now time.Time) (*uuid.UUID, error) {
	if err := b.CanAssignRoom(); err != nil {
		return nil, err
	}

	var previous *uuid.UUID
	if b.assignedRoomID != nil && *b.assignedRoomID != roomID {
		prev := *b.assignedRoomID
		previous = &prev
	}

	id := roomID
	b.assignedRoomID = &id
	if checkIn && b.status.CanTransitionTo(StatusCheckedIn) {
		b.status = StatusCheckedIn
	}
	b.updatedAt = now
	return previous, nil
}

func (b *Booking) CanAssignRoom() error {
	if b.Type() != TypeHotel {
		return ErrNotHotelBooking
	}
	if b.status.IsTerminal() {
		return ErrBookingFinal
	}
	return nil
}

func (b *Booking) detachRoom() *uuid.UUID {
	room := b.assignedRoomID
	b.assignedRoomID = nil
	return room
}

func (b *Booking) Type() Type {
	if b.details == nil {
		return ""
	}
	return b.details.Type()
}

func (b *Booking) TourDetails() (TourDetails, bool) {
	d, ok := b.details.(TourDetails)
	return d, ok
}

func (b *Booking) HotelDetails() (HotelDetails, bool) {
	d, ok := b.details.(HotelDetails)
	return d, ok
}

// NumGuests is the headcount counted against tour capacity.
func (b *Booking) NumGuests() int {
	if d, ok := b.details.(TourDetails); ok && d.NumGuests > 0 {
		return d.NumGuests
	}
	return 1
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) UserID() uuid.UUID          { return b.userID }
func (b *Booking) ItemID() uuid.UUID          { return b.itemID }
func (b *Booking) Details() Details           { return b.details }
func (b *Booking) AssignedRoomID() *uuid.UUID { return b.assignedRoomID }
func (b *Booking) TotalPrice() Money          { return b.totalPrice }
func (b *Booking) CommissionRate() float64    { return b.commissionRate }
func (b *Booking) Commission() Money          { return b.commission }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
