//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"travel-booking/internal/domain/catalog"
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

func TestCatalogReadStore_TourByID(t *testing.T) {
	ctx := context.Background()
	tb := builder.NewTourBuilder().WithMaxPeople(12).WithPrice(15000, 0.1)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		mockQueries.EXPECT().GetTour(ctx, nil, tb.ID).Return(tb.BuildInfra(), nil)

		tour, err := readstore.NewCatalogReadStore(mockQueries, nil).TourByID(ctx, tb.ID)

		require.NoError(t, err)
		assert.Equal(t, 12, tour.MaxPeople())
		assert.Equal(t, int64(15000), tour.AmountCents())
		assert.InDelta(t, 0.1, tour.Discount(), 1e-9)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		mockQueries.EXPECT().GetTour(ctx, nil, gomock.Any()).Return(sqlstore.Tours{}, pgx.ErrNoRows)

		tour, err := readstore.NewCatalogReadStore(mockQueries, nil).TourByID(ctx, uuid.New())

		assert.Nil(t, tour)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("stored capacity is invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		row := tb.BuildInfra()
		row.MaxPeople = 0
		mockQueries.EXPECT().GetTour(ctx, nil, tb.ID).Return(row, nil)

		_, err := readstore.NewCatalogReadStore(mockQueries, nil).TourByID(ctx, tb.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogReadStore_HotelByID(t *testing.T) {
	ctx := context.Background()
	hb := builder.NewHotelBuilder().WithRoomType("Deluxe", 35000)
	row, types := hb.BuildInfra()

	t.Run("success: room types attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		mockQueries.EXPECT().GetHotel(ctx, nil, hb.ID).Return(row, nil)
		mockQueries.EXPECT().ListRoomTypesByHotel(ctx, nil, hb.ID).Return(types, nil)

		hotel, err := readstore.NewCatalogReadStore(mockQueries, nil).HotelByID(ctx, hb.ID)

		require.NoError(t, err)
		require.Len(t, hotel.RoomTypes(), 2)
		deluxe, ok := hotel.RoomType(hb.RoomTypeID(1))
		require.True(t, ok)
		assert.Equal(t, int64(35000), deluxe.PriceCents)
	})

	t.Run("room types cannot be listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		mockQueries.EXPECT().GetHotel(ctx, nil, hb.ID).Return(row, nil)
		mockQueries.EXPECT().ListRoomTypesByHotel(ctx, nil, hb.ID).Return(nil, errors.New("statement timeout"))

		_, err := readstore.NewCatalogReadStore(mockQueries, nil).HotelByID(ctx, hb.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCatalogReadStore_Rooms(t *testing.T) {
	ctx := context.Background()
	hotelID, rtID := uuid.New(), uuid.New()
	free := builder.NewRoomBuilder(hotelID, rtID).WithNumber("201")
	down := builder.NewRoomBuilder(hotelID, rtID).WithNumber("202").InMaintenance()

	t.Run("rooms by type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		mockQueries.EXPECT().
			ListRoomsByRoomType(ctx, nil, sqlstore.ListRoomsByRoomTypeParams{HotelID: hotelID, RoomTypeID: rtID}).
			Return([]sqlstore.Rooms{free.BuildInfra(), down.BuildInfra()}, nil)

		rooms, err := readstore.NewCatalogReadStore(mockQueries, nil).RoomsByType(ctx, hotelID, rtID)

		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.True(t, rooms[0].IsBookable())
		assert.False(t, rooms[1].IsBookable())
	})

	t.Run("single room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		mockQueries.EXPECT().GetRoom(ctx, nil, down.ID).Return(down.BuildInfra(), nil)

		room, err := readstore.NewCatalogReadStore(mockQueries, nil).RoomByID(ctx, down.ID)

		require.NoError(t, err)
		assert.Equal(t, catalog.RoomMaintenance, room.Status())
		assert.Equal(t, "202", room.Number())
	})

	t.Run("room not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockCatalogReadQueries(ctrl)
		mockQueries.EXPECT().GetRoom(ctx, nil, gomock.Any()).Return(sqlstore.Rooms{}, pgx.ErrNoRows)

		_, err := readstore.NewCatalogReadStore(mockQueries, nil).RoomByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
