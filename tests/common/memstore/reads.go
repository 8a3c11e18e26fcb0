//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/customtour"
	"travel-booking/internal/domain/user"

	"github.com/google/uuid"
)

// reads answers shared.CommandReads. Inside a transaction it overlays the staged writes.
type reads struct {
	store *Store
	tx    *memTx
}

func (r *reads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFound("failed to find user")
	}
	return u, nil
}

func (r *reads) TourByID(_ context.Context, id uuid.UUID) (*catalog.Tour, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.tours[id]
	if !ok {
		return nil, notFound("failed to find tour")
	}
	return t, nil
}

func (r *reads) HotelByID(_ context.Context, id uuid.UUID) (*catalog.Hotel, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	h, ok := r.store.hotels[id]
	if !ok {
		return nil, notFound("failed to find hotel")
	}
	return h, nil
}

func (r *reads) RoomByID(_ context.Context, id uuid.UUID) (*catalog.PhysicalRoom, error) {
	for _, room := range r.allRooms() {
		if room.ID() == id {
			return room, nil
		}
	}
	return nil, notFound("failed to find room")
}

func (r *reads) RoomsByType(_ context.Context, hotelID, roomTypeID uuid.UUID) ([]*catalog.PhysicalRoom, error) {
	var out []*catalog.PhysicalRoom
	for _, room := range r.allRooms() {
		if room.HotelID() == hotelID && room.RoomTypeID() == roomTypeID {
			out = append(out, room)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out, nil
}

func (r *reads) TourBookingsOn(_ context.Context, tourID uuid.UUID, date time.Time) ([]*booking.Booking, error) {
	day := booking.NormalizeDate(date)
	var out []*booking.Booking
	for _, b := range r.allBookings() {
		if b.ItemID() != tourID || b.Status() == booking.StatusCancel {
			continue
		}
		if d, ok := b.TourDetails(); ok && d.StartDate.Equal(day) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *reads) OverlappingHotelBookings(_ context.Context, hotelID, roomTypeID uuid.UUID, window booking.DateRange) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.allBookings() {
		if b.ItemID() != hotelID || !b.Status().IsActive() {
			continue
		}
		if d, ok := b.HotelDetails(); ok && d.RoomTypeID == roomTypeID && d.Window.Overlaps(window) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *reads) ActiveHotelBookings(_ context.Context, hotelID, roomTypeID uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.allBookings() {
		if b.ItemID() != hotelID || !b.Status().IsActive() {
			continue
		}
		if d, ok := b.HotelDetails(); ok && d.RoomTypeID == roomTypeID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *reads) allBookings() []*booking.Booking {
	merged := make(map[uuid.UUID]*booking.Booking)
	r.store.mu.Lock()
	for id, b := range r.store.bookings {
		merged[id] = cloneBooking(b)
	}
	r.store.mu.Unlock()
	if r.tx != nil {
		for id, b := range r.tx.bookings {
			merged[id] = cloneBooking(b)
		}
	}

	out := make([]*booking.Booking, 0, len(merged))
	for _, b := range merged {
		out = append(out, b)
	}
	return out
}

func (r *reads) allRooms() []*catalog.PhysicalRoom {
	merged := make(map[uuid.UUID]*catalog.PhysicalRoom)
	r.store.mu.Lock()
	for id, room := range r.store.rooms {
		merged[id] = cloneRoom(room)
	}
	r.store.mu.Unlock()
	if r.tx != nil {
		for id, room := range r.tx.rooms {
			merged[id] = cloneRoom(room)
		}
	}

	out := make([]*catalog.PhysicalRoom, 0, len(merged))
	for _, room := range merged {
		out = append(out, room)
	}
	return out
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	var room *uuid.UUID
	if id := b.AssignedRoomID(); id != nil {
		v := *id
		room = &v
	}
	return booking.ReconstructBooking(
		b.ID(), b.UserID(), b.ItemID(),
		b.Details(),
		room,
		b.TotalPrice(),
		b.CommissionRate(),
		b.Commission(),
		b.Status(),
		b.CreatedAt(), b.UpdatedAt(),
	)
}

func cloneRoom(r *catalog.PhysicalRoom) *catalog.PhysicalRoom {
	var current *uuid.UUID
	if id := r.CurrentBookingID(); id != nil {
		v := *id
		current = &v
	}
	return catalog.ReconstructPhysicalRoom(r.ID(), r.HotelID(), r.RoomTypeID(), r.Number(), r.Status(), current, r.UpdatedAt())
}

func cloneRequest(r *customtour.Request) *customtour.Request {
	return customtour.ReconstructRequest(
		r.ID(), r.UserID(),
		r.Details(),
		r.Status(),
		copyID(r.AssignedGuideID()),
		append([]customtour.Quote(nil), r.Quotes()...),
		append([]customtour.Bargain(nil), r.Bargains()...),
		copyID(r.AcceptedQuoteID()),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
