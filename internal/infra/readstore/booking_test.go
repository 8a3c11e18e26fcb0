//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/tests/common/builder"
	readstoremock "travel-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewTourBookingBuilder(uuid.New()).WithGuests(4)

	testCases := []struct {
		name       string
		row        sqlstore.Bookings
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", row: bb.BuildInfra()},
		{name: "not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "database error", queryErr: errors.New("connection refused"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			mockQueries.EXPECT().GetBooking(ctx, nil, bb.ID).Return(tc.row, tc.queryErr)

			got, err := readstore.NewBookingReadStore(mockQueries, nil).FindByID(ctx, bb.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 4, got.NumGuests())
			assert.Equal(t, int64(10000), got.TotalPrice().Cents())
		})
	}
}

func TestBookingReadStore_TourBookingsOn(t *testing.T) {
	ctx := context.Background()
	tourID := uuid.New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
	mockQueries.EXPECT().ListTourBookingsOnDate(ctx, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.ListTourBookingsOnDateParams) ([]sqlstore.Bookings, error) {
			assert.Equal(t, tourID, arg.TourID)
			assert.True(t, date.Equal(arg.StartDate.Time))
			return []sqlstore.Bookings{
				builder.NewTourBookingBuilder(tourID).WithGuests(2).BuildInfra(),
				builder.NewTourBookingBuilder(tourID).WithGuests(3).BuildInfra(),
			}, nil
		})

	got, err := readstore.NewBookingReadStore(mockQueries, nil).TourBookingsOn(ctx, tourID, date)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].NumGuests()+got[1].NumGuests())
}

func TestBookingReadStore_OverlappingHotelBookings(t *testing.T) {
	ctx := context.Background()
	hotelID, rtID := uuid.New(), uuid.New()
	window, err := booking.NewDateRange(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	t.Run("window bounds passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().ListOverlappingHotelBookings(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.ListOverlappingHotelBookingsParams) ([]sqlstore.Bookings, error) {
				assert.Equal(t, hotelID, arg.HotelID)
				assert.Equal(t, rtID, arg.RoomTypeID)
				assert.True(t, window.Start().Equal(arg.StartDate.Time))
				assert.True(t, window.End().Equal(arg.EndDate.Time))
				return []sqlstore.Bookings{builder.NewHotelBookingBuilder(hotelID, rtID).BuildInfra()}, nil
			})

		got, err := readstore.NewBookingReadStore(mockQueries, nil).OverlappingHotelBookings(ctx, hotelID, rtID, window)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("hotel row without room type is corrupt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		row := builder.NewHotelBookingBuilder(hotelID, rtID).BuildInfra()
		row.RoomTypeID.Valid = false
		mockQueries.EXPECT().ListOverlappingHotelBookings(ctx, nil, gomock.Any()).Return([]sqlstore.Bookings{row}, nil)

		_, err := readstore.NewBookingReadStore(mockQueries, nil).OverlappingHotelBookings(ctx, hotelID, rtID, window)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_ActiveHotelBookings(t *testing.T) {
	ctx := context.Background()
	hotelID, rtID := uuid.New(), uuid.New()

	t.Run("room type passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().
			ListActiveHotelBookings(ctx, nil, sqlstore.ListActiveHotelBookingsParams{HotelID: hotelID, RoomTypeID: rtID}).
			Return([]sqlstore.Bookings{
				builder.NewHotelBookingBuilder(hotelID, rtID).BuildInfra(),
				builder.NewHotelBookingBuilder(hotelID, rtID).WithStatus(booking.StatusCheckedIn).BuildInfra(),
			}, nil)

		got, err := readstore.NewBookingReadStore(mockQueries, nil).ActiveHotelBookings(ctx, hotelID, rtID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, booking.StatusCheckedIn, got[1].Status())
	})

	t.Run("database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().ListActiveHotelBookings(ctx, nil, gomock.Any()).Return(nil, errors.New("statement timeout"))

		_, err := readstore.NewBookingReadStore(mockQueries, nil).ActiveHotelBookings(ctx, hotelID, rtID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("first page leaves the keyset unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().ListBookingsByUser(ctx, nil, sqlstore.ListBookingsByUserParams{UserID: userID, Limit: 21}).Return(nil, nil)

		got, err := readstore.NewBookingReadStore(mockQueries, nil).ListByUser(ctx, userID, nil, nil, 21)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("keyset passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		after := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
		afterID := uuid.New()
		mockQueries.EXPECT().ListBookingsByUser(ctx, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.ListBookingsByUserParams) ([]sqlstore.Bookings, error) {
				assert.True(t, arg.AfterCreatedAt.Valid)
				assert.True(t, after.Equal(arg.AfterCreatedAt.Time))
				assert.Equal(t, [16]byte(afterID), arg.AfterID.Bytes)
				assert.Equal(t, int32(6), arg.Limit)
				return nil, nil
			})

		_, err := readstore.NewBookingReadStore(mockQueries, nil).ListByUser(ctx, userID, &after, &afterID, 6)

		require.NoError(t, err)
	})
}
