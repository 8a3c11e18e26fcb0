//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/catalog"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newRoom() *builder.RoomBuilder {
	return builder.NewRoomBuilder(uuid.New(), uuid.New())
}

func TestPhysicalRoom_Occupy(t *testing.T) {
	bookingID := uuid.New()

	t.Run("available room becomes occupied", func(t *testing.T) {
		r := newRoom().BuildDomain()

		require.NoError(t, r.Occupy(bookingID, now))

		assert.Equal(t, catalog.RoomOccupied, r.Status())
		require.NotNil(t, r.CurrentBookingID())
		assert.Equal(t, bookingID, *r.CurrentBookingID())
		assert.True(t, r.IsHeldBy(bookingID))
		assert.Equal(t, now, r.UpdatedAt())
	})

	t.Run("same booking again is a no-op", func(t *testing.T) {
		r := newRoom().OccupiedBy(bookingID).BuildDomain()
		before := r.UpdatedAt()

		require.NoError(t, r.Occupy(bookingID, now))
		assert.Equal(t, before, r.UpdatedAt())
	})

	t.Run("another booking is refused", func(t *testing.T) {
		r := newRoom().OccupiedBy(uuid.New()).BuildDomain()

		err := r.Occupy(bookingID, now)

		assert.ErrorIs(t, err, catalog.ErrRoomOccupied)
		assert.False(t, r.IsHeldBy(bookingID))
	})

	t.Run("maintenance room is refused", func(t *testing.T) {
		r := newRoom().InMaintenance().BuildDomain()

		err := r.Occupy(bookingID, now)

		assert.ErrorIs(t, err, catalog.ErrRoomUnavailable)
		assert.Equal(t, catalog.RoomMaintenance, r.Status())
	})
}

func TestPhysicalRoom_Release(t *testing.T) {
	bookingID := uuid.New()

	t.Run("holder releases", func(t *testing.T) {
		r := newRoom().OccupiedBy(bookingID).BuildDomain()

		require.NoError(t, r.Release(bookingID, now))

		assert.Equal(t, catalog.RoomAvailable, r.Status())
		assert.Nil(t, r.CurrentBookingID())
	})

	t.Run("non holder cannot release", func(t *testing.T) {
		other := uuid.New()
		r := newRoom().OccupiedBy(other).BuildDomain()

		assert.ErrorIs(t, r.Release(bookingID, now), catalog.ErrRoomNotHeldByBooking)
		assert.True(t, r.IsHeldBy(other))
	})

	t.Run("free room has no holder", func(t *testing.T) {
		r := newRoom().BuildDomain()
		assert.ErrorIs(t, r.Release(bookingID, now), catalog.ErrRoomNotHeldByBooking)
	})
}

func TestPhysicalRoom_SetMaintenance(t *testing.T) {
	tests := []struct {
		name       string
		room       *builder.RoomBuilder
		enabled    bool
		wantStatus catalog.RoomStatus
		wantErr    error
	}{
		{name: "available into maintenance", room: newRoom(), enabled: true, wantStatus: catalog.RoomMaintenance},
		{name: "maintenance back to available", room: newRoom().InMaintenance(), enabled: false, wantStatus: catalog.RoomAvailable},
		{name: "available stays available", room: newRoom(), enabled: false, wantStatus: catalog.RoomAvailable},
		{name: "occupied room is refused", room: newRoom().OccupiedBy(uuid.New()), enabled: true, wantStatus: catalog.RoomOccupied, wantErr: catalog.ErrRoomOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.room.BuildDomain()

			err := r.SetMaintenance(tt.enabled, now)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, r.Status())
			assert.Equal(t, tt.wantStatus != catalog.RoomMaintenance, r.IsBookable())
		})
	}
}

func TestParseRoomStatus(t *testing.T) {
	for _, s := range []string{"available", "occupied", "maintenance"} {
		got, err := catalog.ParseRoomStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	_, err := catalog.ParseRoomStatus("cleaning")
	assert.ErrorIs(t, err, catalog.ErrInvalidRoomStatus)
}
