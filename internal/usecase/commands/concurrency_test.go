//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/pkg/ptr"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// race runs n calls concurrently and returns how many succeeded and how many were refused
// for capacity. Any other error fails the test.
func race(t *testing.T, n int, call func() error) (admitted, refused int) {
	t.Helper()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		start = make(chan struct{})
		other []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := call()

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			case errors.Is(err, booking.ErrCapacityExceeded), errors.Is(err, booking.ErrNoInventory):
				refused++
			default:
				other = append(other, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Empty(t, other)
	return admitted, refused
}

func TestConcurrentTourAdmission(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	tour := builder.NewTourBuilder().WithMaxPeople(10).MustBuild()
	store.AddTour(tour)
	uc := newBookingCommands(store)

	admitted, refused := race(t, 25, func() error {
		_, err := uc.CreateTourBooking(ctx, uuid.New(), tour.ID(), booking.TourRequest{
			StartDate: ptr.Of(dayD),
			NumGuests: ptr.Of(2),
		})
		return err
	})

	assert.Equal(t, 5, admitted)
	assert.Equal(t, 20, refused)

	guests := 0
	for _, b := range store.Bookings() {
		guests += b.NumGuests()
	}
	assert.Equal(t, 10, guests)
}

func TestConcurrentHotelAdmission(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	hb := builder.NewHotelBuilder()
	hotel := hb.MustBuild()
	rtID := hb.RoomTypeID(0)
	store.AddHotel(hotel, builder.NewRoomBuilder(hotel.ID(), rtID).BuildDomain())
	uc := newBookingCommands(store)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	admitted, refused := race(t, 20, func() error {
		_, err := uc.CreateHotelBooking(ctx, uuid.New(), hotel.ID(), booking.HotelRequest{
			StartDate:  &start,
			EndDate:    &end,
			RoomTypeID: &rtID,
		})
		return err
	})

	assert.Equal(t, 1, admitted)
	assert.Equal(t, 19, refused)
	assert.Len(t, store.Bookings(), 1)
}

func TestConcurrentRoomAssignment(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	hb := builder.NewHotelBuilder()
	hotel := hb.MustBuild()
	rtID := hb.RoomTypeID(0)
	room := builder.NewRoomBuilder(hotel.ID(), rtID)
	store.AddHotel(hotel, room.BuildDomain())

	ids := make([]uuid.UUID, 8)
	for i := range ids {
		bb := builder.NewHotelBookingBuilder(hotel.ID(), rtID)
		store.AddBooking(bb.BuildDomain())
		ids[i] = bb.ID
	}
	uc := newRoomCommands(store, true)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  []uuid.UUID
		occupied int
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := uc.AssignRoom(ctx, adminActor(), id, room.ID)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, id)
				return
			}
			if assert.ErrorIs(t, err, catalog.ErrRoomOccupied) {
				occupied++
			}
		}(id)
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, len(ids)-1, occupied)
	stored, _ := store.Room(room.ID)
	require.NotNil(t, stored.CurrentBookingID())
	assert.Equal(t, winners[0], *stored.CurrentBookingID())
}
