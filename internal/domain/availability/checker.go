// Package availability decides whether a candidate booking fits the remaining inventory.
// Every function here is pure: callers supply the current booking set and must hold the
// admission lock for the bucket if they intend to act on the answer.
package availability

import (
	"sort"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonNone             Reason = ""
	ReasonCapacityExceeded Reason = "capacity_exceeded"
	ReasonNoInventory      Reason = "no_inventory"
)

type TourResult struct {
	Admitted  bool
	Occupancy int
	Available int
}

// Err converts a refusal into the ledger's error identity.
func (r TourResult) Err() error {
	if r.Admitted {
		return nil
	}
	return booking.NewCapacityError(r.Available)
}

type HotelResult struct {
	Admitted    bool
	TotalRooms  int
	Overlapping int
	Reason      Reason
}

func (r HotelResult) Available() int {
	if n := r.TotalRooms - r.Overlapping; n > 0 {
		return n
	}
	return 0
}

func (r HotelResult) Err() error {
	switch {
	case r.Admitted:
		return nil
	case r.Reason == ReasonNoInventory:
		return booking.ErrNoInventory
	default:
		return booking.NewCapacityError(r.Available())
	}
}

// CheckTour admits requested guests on date when the guests already booked on that date,
// cancelled bookings excluded, leave room under maxPeople. existing may contain bookings for
// other dates or hotels; they are ignored.
func CheckTour(tourID uuid.UUID, maxPeople int, date time.Time, requested int, existing []*booking.Booking) TourResult {
	day := booking.NormalizeDate(date)

	occupancy := 0
	for _, b := range existing {
		if b.ItemID() != tourID || b.Status() == booking.StatusCancel {
			continue
		}
		d, ok := b.TourDetails()
		if !ok || !d.StartDate.Equal(day) {
			continue
		}
		occupancy += b.NumGuests()
	}

	available := maxPeople - occupancy
	if available < 0 {
		available = 0
	}
	return TourResult{
		Admitted:  requested >= 1 && requested <= available,
		Occupancy: occupancy,
		Available: available,
	}
}

// CheckHotel admits a stay on roomTypeID over window when fewer active bookings overlap it
// than there are rooms of that type outside maintenance.
func CheckHotel(roomTypeID uuid.UUID, window booking.DateRange, rooms []*catalog.PhysicalRoom, existing []*booking.Booking) HotelResult {
	total := 0
	for _, r := range rooms {
		if r.RoomTypeID() == roomTypeID && r.IsBookable() {
			total++
		}
	}
	if total == 0 {
		return HotelResult{Reason: ReasonNoInventory}
	}

	overlapping := 0
	for _, b := range existing {
		if !b.Status().IsActive() {
			continue
		}
		d, ok := b.HotelDetails()
		if !ok || d.RoomTypeID != roomTypeID {
			continue
		}
		if d.Window.Overlaps(window) {
			overlapping++
		}
	}

	res := HotelResult{
		Admitted:    overlapping < total,
		TotalRooms:  total,
		Overlapping: overlapping,
	}
	if !res.Admitted {
		res.Reason = ReasonCapacityExceeded
	}
	return res
}

type WithdrawalResult struct {
	Admitted       bool
	RemainingRooms int
	PeakOverlap    int
}

func (r WithdrawalResult) Err() error {
	if r.Admitted {
		return nil
	}
	return catalog.ErrRoomInDemand
}

// CheckRoomWithdrawal decides whether roomID may leave the bookable inventory of roomTypeID.
// It is refused when, on some day, more active stays of the type overlap than rooms would
// remain.
func CheckRoomWithdrawal(roomID, roomTypeID uuid.UUID, rooms []*catalog.PhysicalRoom, existing []*booking.Booking) WithdrawalResult {
	remaining := 0
	for _, r := range rooms {
		if r.ID() != roomID && r.RoomTypeID() == roomTypeID && r.IsBookable() {
			remaining++
		}
	}

	var windows []booking.DateRange
	for _, b := range existing {
		if !b.Status().IsActive() {
			continue
		}
		if d, ok := b.HotelDetails(); ok && d.RoomTypeID == roomTypeID {
			windows = append(windows, d.Window)
		}
	}

	peak := peakOverlap(windows)
	return WithdrawalResult{
		Admitted:       peak <= remaining,
		RemainingRooms: remaining,
		PeakOverlap:    peak,
	}
}

// peakOverlap is the largest number of windows sharing a day. Windows are closed at both
// ends, so a stay ending on the day another starts counts as overlapping.
func peakOverlap(windows []booking.DateRange) int {
	type edge struct {
		at    time.Time
		delta int
	}
	edges := make([]edge, 0, len(windows)*2)
	for _, w := range windows {
		edges = append(edges, edge{at: w.Start(), delta: 1}, edge{at: w.End(), delta: -1})
	}
	sort.Slice(edges, func(i, j int) bool {
		if !edges[i].at.Equal(edges[j].at) {
			return edges[i].at.Before(edges[j].at)
		}
		return edges[i].delta > edges[j].delta
	})

	peak, open := 0, 0
	for _, e := range edges {
		open += e.delta
		if open > peak {
			peak = open
		}
	}
	return peak
}
