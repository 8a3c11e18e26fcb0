//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/pkg/ptr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/shared"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	dayD     = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
)

func newBookingCommands(store *memstore.Store) commands.BookingCommands {
	return commands.NewBookingCommands(store, clock.NewMockClock(fixedNow))
}

func adminActor() user.Actor {
	return user.NewActor(uuid.New(), user.RoleAdmin)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedTourBookings stores one booked reservation per guest count on dayD.
func seedTourBookings(store *memstore.Store, tour *catalog.Tour, guests ...int) {
	for _, n := range guests {
		store.AddBooking(builder.NewTourBookingBuilder(tour.ID()).WithGuests(n).BuildDomain())
	}
}

func TestCreateTourBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("admits guests within remaining capacity", func(t *testing.T) {
		store := memstore.New()
		tour := builder.NewTourBuilder().WithMaxPeople(10).WithPrice(10000, 0.1).MustBuild()
		store.AddTour(tour)
		seedTourBookings(store, tour, 5, 3)
		userID := uuid.New()

		b, err := newBookingCommands(store).CreateTourBooking(ctx, userID, tour.ID(), booking.TourRequest{
			StartDate: ptr.Of(dayD.Add(15 * time.Hour)),
			NumGuests: ptr.Of(2),
		})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, int64(18000), b.TotalPrice().Cents())
		assert.Equal(t, int64(1800), b.Commission().Cents())
		assert.Equal(t, fixedNow, b.CreatedAt())

		stored, ok := store.Booking(b.ID())
		require.True(t, ok)
		details, _ := stored.TourDetails()
		assert.Equal(t, dayD, details.StartDate)
		assert.Equal(t, 2, details.NumGuests)

		assert.Contains(t, store.Buckets(), availability.TourBucket(tour.ID(), dayD))
		jobs := store.JobsByTopic(shared.TopicBookingCreated)
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.NotificationKindEmail, jobs[0].Kind)
		assert.Equal(t, userID, jobs[0].Event.RecipientID)
		assert.Equal(t, b.ID(), jobs[0].Event.SubjectID)
		assert.Equal(t, tour.Title(), jobs[0].Event.Summary)
	})

	t.Run("refuses when guests exceed remaining capacity", func(t *testing.T) {
		store := memstore.New()
		tour := builder.NewTourBuilder().WithMaxPeople(10).MustBuild()
		store.AddTour(tour)
		seedTourBookings(store, tour, 5, 3)

		b, err := newBookingCommands(store).CreateTourBooking(ctx, uuid.New(), tour.ID(), booking.TourRequest{
			StartDate: ptr.Of(dayD),
			NumGuests: ptr.Of(3),
		})

		require.ErrorIs(t, err, booking.ErrCapacityExceeded)
		assert.Nil(t, b)
		var capErr *booking.CapacityError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, 2, capErr.Available)
		assert.Len(t, store.Bookings(), 2)
		assert.Empty(t, store.Jobs())
	})

	t.Run("cancelled bookings do not hold capacity", func(t *testing.T) {
		store := memstore.New()
		tour := builder.NewTourBuilder().WithMaxPeople(4).MustBuild()
		store.AddTour(tour)
		store.AddBooking(builder.NewTourBookingBuilder(tour.ID()).WithGuests(4).WithStatus(booking.StatusCancel).BuildDomain())

		_, err := newBookingCommands(store).CreateTourBooking(ctx, uuid.New(), tour.ID(), booking.TourRequest{
			StartDate: ptr.Of(dayD),
			NumGuests: ptr.Of(4),
		})

		require.NoError(t, err)
	})

	t.Run("bookings on other dates are ignored", func(t *testing.T) {
		store := memstore.New()
		tour := builder.NewTourBuilder().WithMaxPeople(4).MustBuild()
		store.AddTour(tour)
		store.AddBooking(builder.NewTourBookingBuilder(tour.ID()).WithGuests(4).WithDates(dayD.AddDate(0, 0, 1), dayD.AddDate(0, 0, 1)).BuildDomain())

		_, err := newBookingCommands(store).CreateTourBooking(ctx, uuid.New(), tour.ID(), booking.TourRequest{
			StartDate: ptr.Of(dayD),
			NumGuests: ptr.Of(4),
		})

		require.NoError(t, err)
	})

	t.Run("oversized party is refused before pricing", func(t *testing.T) {
		store := memstore.New()
		tour := builder.NewTourBuilder().WithMaxPeople(10).WithPrice(10000, 0).MustBuild()
		store.AddTour(tour)
		store.AddBooking(builder.NewTourBookingBuilder(tour.ID()).WithGuests(1).BuildDomain())

		b, err := newBookingCommands(store).CreateTourBooking(ctx, uuid.New(), tour.ID(), booking.TourRequest{
			StartDate: ptr.Of(dayD),
			NumGuests: ptr.Of(math.MaxInt),
		})

		require.ErrorIs(t, err, booking.ErrInvalidGuests)
		assert.Nil(t, b)
		assert.Len(t, store.Bookings(), 1)
		assert.Empty(t, store.Jobs())
	})

	t.Run("defaults to one guest", func(t *testing.T) {
		store := memstore.New()
		tour := builder.NewTourBuilder().WithMaxPeople(1).MustBuild()
		store.AddTour(tour)

		b, err := newBookingCommands(store).CreateTourBooking(ctx, uuid.New(), tour.ID(), booking.TourRequest{StartDate: ptr.Of(dayD)})

		require.NoError(t, err)
		assert.Equal(t, 1, b.NumGuests())
	})

	errCases := []struct {
		name  string
		req   booking.TourRequest
		errIs error
	}{
		{name: "missing start date", req: booking.TourRequest{NumGuests: ptr.Of(1)}, errIs: booking.ErrMissingFields},
		{name: "zero guests", req: booking.TourRequest{StartDate: ptr.Of(dayD), NumGuests: ptr.Of(0)}, errIs: booking.ErrInvalidGuests},
		{name: "end before start", req: booking.TourRequest{StartDate: ptr.Of(dayD), EndDate: ptr.Of(dayD.AddDate(0, 0, -1))}, errIs: booking.ErrInvalidDateRange},
		{name: "initial status other than pending or booked", req: booking.TourRequest{StartDate: ptr.Of(dayD), Status: ptr.Of(booking.StatusComplete)}, errIs: booking.ErrInvalidStatus},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			tour := builder.NewTourBuilder().MustBuild()
			store.AddTour(tour)

			_, err := newBookingCommands(store).CreateTourBooking(ctx, uuid.New(), tour.ID(), tc.req)

			require.ErrorIs(t, err, tc.errIs)
			assert.Empty(t, store.Bookings())
		})
	}

	t.Run("unknown tour", func(t *testing.T) {
		_, err := newBookingCommands(memstore.New()).CreateTourBooking(ctx, uuid.New(), uuid.New(), booking.TourRequest{StartDate: ptr.Of(dayD)})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrNotFound))
	})

	t.Run("notification failure rolls the booking back", func(t *testing.T) {
		store := memstore.New()
		tour := builder.NewTourBuilder().MustBuild()
		store.AddTour(tour)
		store.FailNotifications = errors.New("outbox unavailable")

		_, err := newBookingCommands(store).CreateTourBooking(ctx, uuid.New(), tour.ID(), booking.TourRequest{StartDate: ptr.Of(dayD)})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
		assert.Empty(t, store.Bookings())
		assert.Empty(t, store.Buckets())
	})
}

func TestCreateHotelBooking(t *testing.T) {
	ctx := context.Background()

	setup := func(rooms int) (*memstore.Store, *catalog.Hotel, uuid.UUID) {
		store := memstore.New()
		hb := builder.NewHotelBuilder()
		hotel := hb.MustBuild()
		rtID := hb.RoomTypeID(0)
		var physical []*catalog.PhysicalRoom
		for i := 0; i < rooms; i++ {
			physical = append(physical, builder.NewRoomBuilder(hotel.ID(), rtID).WithNumber(string(rune('1'+i))+"01").BuildDomain())
		}
		store.AddHotel(hotel, physical...)
		return store, hotel, rtID
	}

	request := func(rtID uuid.UUID, start, end time.Time) booking.HotelRequest {
		return booking.HotelRequest{StartDate: &start, EndDate: &end, RoomTypeID: &rtID}
	}

	t.Run("refuses a third overlapping stay on two rooms", func(t *testing.T) {
		store, hotel, rtID := setup(2)
		for i := 0; i < 2; i++ {
			store.AddBooking(builder.NewHotelBookingBuilder(hotel.ID(), rtID).WithDates(date(2024, 6, 1), date(2024, 6, 5)).BuildDomain())
		}

		_, err := newBookingCommands(store).CreateHotelBooking(ctx, uuid.New(), hotel.ID(), request(rtID, date(2024, 6, 3), date(2024, 6, 7)))

		require.ErrorIs(t, err, booking.ErrCapacityExceeded)
		assert.Len(t, store.Bookings(), 2)
	})

	t.Run("admits when one overlapping stay is cancelled", func(t *testing.T) {
		store, hotel, rtID := setup(2)
		store.AddBooking(builder.NewHotelBookingBuilder(hotel.ID(), rtID).WithDates(date(2024, 6, 1), date(2024, 6, 5)).BuildDomain())
		store.AddBooking(builder.NewHotelBookingBuilder(hotel.ID(), rtID).WithDates(date(2024, 6, 1), date(2024, 6, 5)).WithStatus(booking.StatusCancel).BuildDomain())

		b, err := newBookingCommands(store).CreateHotelBooking(ctx, uuid.New(), hotel.ID(), request(rtID, date(2024, 6, 3), date(2024, 6, 7)))

		require.NoError(t, err)
		assert.Equal(t, int64(20000), b.TotalPrice().Cents())
		assert.Equal(t, int64(3000), b.Commission().Cents())
		assert.Contains(t, store.Buckets(), availability.HotelBucket(hotel.ID(), rtID))
		require.Len(t, store.JobsByTopic(shared.TopicBookingCreated), 1)
	})

	t.Run("touching stays count as overlapping", func(t *testing.T) {
		store, hotel, rtID := setup(1)
		store.AddBooking(builder.NewHotelBookingBuilder(hotel.ID(), rtID).WithDates(date(2024, 6, 1), date(2024, 6, 5)).BuildDomain())

		_, err := newBookingCommands(store).CreateHotelBooking(ctx, uuid.New(), hotel.ID(), request(rtID, date(2024, 6, 5), date(2024, 6, 8)))

		require.ErrorIs(t, err, booking.ErrCapacityExceeded)
	})

	t.Run("no bookable rooms", func(t *testing.T) {
		store := memstore.New()
		hb := builder.NewHotelBuilder()
		hotel := hb.MustBuild()
		rtID := hb.RoomTypeID(0)
		store.AddHotel(hotel, builder.NewRoomBuilder(hotel.ID(), rtID).InMaintenance().BuildDomain())

		_, err := newBookingCommands(store).CreateHotelBooking(ctx, uuid.New(), hotel.ID(), request(rtID, date(2024, 6, 1), date(2024, 6, 2)))

		require.ErrorIs(t, err, booking.ErrNoInventory)
	})

	t.Run("explicit price overrides the list price", func(t *testing.T) {
		store, hotel, rtID := setup(1)
		req := request(rtID, date(2024, 6, 1), date(2024, 6, 3))
		req.PriceCents = ptr.Of(int64(12345))
		req.Status = ptr.Of(booking.StatusBooked)

		b, err := newBookingCommands(store).CreateHotelBooking(ctx, uuid.New(), hotel.ID(), req)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusBooked, b.Status())
		assert.Equal(t, int64(12345), b.TotalPrice().Cents())
		assert.Equal(t, int64(1852), b.Commission().Cents())
	})

	t.Run("room type of another hotel", func(t *testing.T) {
		store, hotel, _ := setup(1)

		_, err := newBookingCommands(store).CreateHotelBooking(ctx, uuid.New(), hotel.ID(), request(uuid.New(), date(2024, 6, 1), date(2024, 6, 2)))

		require.ErrorIs(t, err, catalog.ErrRoomTypeNotInHotel)
	})

	t.Run("end not after start", func(t *testing.T) {
		store, hotel, rtID := setup(1)

		_, err := newBookingCommands(store).CreateHotelBooking(ctx, uuid.New(), hotel.ID(), request(rtID, date(2024, 6, 1), date(2024, 6, 1)))

		require.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		_, err := newBookingCommands(memstore.New()).CreateHotelBooking(ctx, uuid.New(), uuid.New(), request(uuid.New(), date(2024, 6, 1), date(2024, 6, 2)))

		assert.True(t, errs.Is(err, commands.ErrNotFound))
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels and the assigned room is released", func(t *testing.T) {
		store := memstore.New()
		hb := builder.NewHotelBuilder()
		hotel := hb.MustBuild()
		rtID := hb.RoomTypeID(0)
		roomB := builder.NewRoomBuilder(hotel.ID(), rtID)
		bb := builder.NewHotelBookingBuilder(hotel.ID(), rtID).WithRoom(roomB.ID)
		store.AddHotel(hotel, roomB.OccupiedBy(bb.ID).BuildDomain())
		store.AddBooking(bb.BuildDomain())
		owner := user.NewActor(bb.UserID, user.RoleUser)

		res, err := newBookingCommands(store).CancelBooking(ctx, owner, bb.ID)

		require.NoError(t, err)
		assert.True(t, res.Transition.Changed)
		assert.Equal(t, booking.StatusCancel, res.Booking.Status())
		require.NotNil(t, res.Transition.ReleasedRoomID)
		assert.Equal(t, roomB.ID, *res.Transition.ReleasedRoomID)

		room, _ := store.Room(roomB.ID)
		assert.Equal(t, catalog.RoomAvailable, room.Status())
		assert.Nil(t, room.CurrentBookingID())
		stored, _ := store.Booking(bb.ID)
		assert.Equal(t, booking.StatusCancel, stored.Status())
		assert.Nil(t, stored.AssignedRoomID())

		jobs := store.JobsByTopic(shared.TopicBookingCancelled)
		require.Len(t, jobs, 1)
		assert.Equal(t, bb.UserID, jobs[0].Event.RecipientID)
		assert.Equal(t, "cancel", jobs[0].Event.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		store := memstore.New()
		bb := builder.NewTourBookingBuilder(uuid.New()).WithStatus(booking.StatusCancel)
		store.AddBooking(bb.BuildDomain())

		res, err := newBookingCommands(store).CancelBooking(ctx, user.NewActor(bb.UserID, user.RoleUser), bb.ID)

		require.NoError(t, err)
		assert.True(t, res.Transition.AlreadyFinal)
		assert.False(t, res.Transition.Changed)
		assert.Empty(t, store.Jobs())
	})

	t.Run("checked-in booking is left alone", func(t *testing.T) {
		store := memstore.New()
		bb := builder.NewTourBookingBuilder(uuid.New()).WithStatus(booking.StatusCheckedIn)
		store.AddBooking(bb.BuildDomain())

		res, err := newBookingCommands(store).CancelBooking(ctx, adminActor(), bb.ID)

		require.NoError(t, err)
		assert.True(t, res.Transition.AlreadyFinal)
		stored, _ := store.Booking(bb.ID)
		assert.Equal(t, booking.StatusCheckedIn, stored.Status())
	})

	t.Run("admin may cancel any booking", func(t *testing.T) {
		store := memstore.New()
		bb := builder.NewTourBookingBuilder(uuid.New()).WithStatus(booking.StatusPending)
		store.AddBooking(bb.BuildDomain())

		res, err := newBookingCommands(store).CancelBooking(ctx, adminActor(), bb.ID)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, res.Transition.From)
		assert.Equal(t, booking.StatusCancel, res.Transition.To)
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		store := memstore.New()
		bb := builder.NewTourBookingBuilder(uuid.New())
		store.AddBooking(bb.BuildDomain())

		_, err := newBookingCommands(store).CancelBooking(ctx, user.NewActor(uuid.New(), user.RoleUser), bb.ID)

		assert.True(t, errs.Is(err, commands.ErrForbidden))
		stored, _ := store.Booking(bb.ID)
		assert.Equal(t, booking.StatusBooked, stored.Status())
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := newBookingCommands(memstore.New()).CancelBooking(ctx, adminActor(), uuid.New())

		assert.True(t, errs.Is(err, commands.ErrNotFound))
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("complete releases the assigned room", func(t *testing.T) {
		store := memstore.New()
		hb := builder.NewHotelBuilder()
		hotel := hb.MustBuild()
		rtID := hb.RoomTypeID(0)
		roomB := builder.NewRoomBuilder(hotel.ID(), rtID)
		bb := builder.NewHotelBookingBuilder(hotel.ID(), rtID).WithRoom(roomB.ID).WithStatus(booking.StatusCheckedIn)
		store.AddHotel(hotel, roomB.OccupiedBy(bb.ID).BuildDomain())
		store.AddBooking(bb.BuildDomain())

		res, err := newBookingCommands(store).UpdateBookingStatus(ctx, adminActor(), bb.ID, booking.StatusComplete)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusComplete, res.Booking.Status())
		room, _ := store.Room(roomB.ID)
		assert.Equal(t, catalog.RoomAvailable, room.Status())
		assert.Nil(t, room.CurrentBookingID())
		require.Len(t, store.JobsByTopic(shared.TopicBookingStatusChanged), 1)
	})

	t.Run("room already taken by another booking is not released", func(t *testing.T) {
		store := memstore.New()
		hb := builder.NewHotelBuilder()
		hotel := hb.MustBuild()
		rtID := hb.RoomTypeID(0)
		roomB := builder.NewRoomBuilder(hotel.ID(), rtID)
		other := uuid.New()
		bb := builder.NewHotelBookingBuilder(hotel.ID(), rtID).WithRoom(roomB.ID).WithStatus(booking.StatusCheckedIn)
		store.AddHotel(hotel, roomB.OccupiedBy(other).BuildDomain())
		store.AddBooking(bb.BuildDomain())

		_, err := newBookingCommands(store).UpdateBookingStatus(ctx, adminActor(), bb.ID, booking.StatusComplete)

		require.NoError(t, err)
		room, _ := store.Room(roomB.ID)
		require.NotNil(t, room.CurrentBookingID())
		assert.Equal(t, other, *room.CurrentBookingID())
	})

	tests := []struct {
		name     string
		from     booking.Status
		target   booking.Status
		errIs    error
		changed  bool
		final    bool
		expected booking.Status
	}{
		{name: "pending to booked", from: booking.StatusPending, target: booking.StatusBooked, changed: true, expected: booking.StatusBooked},
		{name: "booked to checkedIn", from: booking.StatusBooked, target: booking.StatusCheckedIn, changed: true, expected: booking.StatusCheckedIn},
		{name: "same status is a no-op", from: booking.StatusBooked, target: booking.StatusBooked, expected: booking.StatusBooked},
		{name: "backwards is refused", from: booking.StatusCheckedIn, target: booking.StatusPending, errIs: booking.ErrInvalidTransition, expected: booking.StatusCheckedIn},
		{name: "complete is final", from: booking.StatusComplete, target: booking.StatusBooked, final: true, expected: booking.StatusComplete},
		{name: "cancel is final", from: booking.StatusCancel, target: booking.StatusComplete, final: true, expected: booking.StatusCancel},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			bb := builder.NewTourBookingBuilder(uuid.New()).WithStatus(tc.from)
			store.AddBooking(bb.BuildDomain())

			res, err := newBookingCommands(store).UpdateBookingStatus(ctx, adminActor(), bb.ID, tc.target)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.changed, res.Transition.Changed)
				assert.Equal(t, tc.final, res.Transition.AlreadyFinal)
			}
			stored, _ := store.Booking(bb.ID)
			assert.Equal(t, tc.expected, stored.Status())
			if !tc.changed {
				assert.Empty(t, store.Jobs())
			}
		})
	}

	t.Run("non-admin is forbidden", func(t *testing.T) {
		store := memstore.New()
		bb := builder.NewTourBookingBuilder(uuid.New())
		store.AddBooking(bb.BuildDomain())

		_, err := newBookingCommands(store).UpdateBookingStatus(ctx, user.NewActor(bb.UserID, user.RoleUser), bb.ID, booking.StatusComplete)

		assert.True(t, errs.Is(err, commands.ErrForbidden))
	})

	t.Run("unknown target status", func(t *testing.T) {
		_, err := newBookingCommands(memstore.New()).UpdateBookingStatus(ctx, adminActor(), uuid.New(), booking.Status("archived"))

		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
