//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"travel-booking/internal/domain/catalog"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/tests/common/builder"
	repositorymock "travel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomRepository_LockByIDs(t *testing.T) {
	ctx := context.Background()
	hotelID, rtID := uuid.New(), uuid.New()
	free := builder.NewRoomBuilder(hotelID, rtID).WithNumber("101")
	taken := builder.NewRoomBuilder(hotelID, rtID).WithNumber("102").OccupiedBy(uuid.New())

	t.Run("duplicates are locked once and missing rooms are absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		missing := uuid.New()
		mockQueries.EXPECT().LockRooms(ctx, mockDB, []uuid.UUID{free.ID, taken.ID, missing}).
			Return([]sqlstore.Rooms{free.BuildInfra(), taken.BuildInfra()}, nil)

		locked, err := repository.NewRoomRepository(mockQueries, mockDB).LockByIDs(ctx, mockDB, free.ID, taken.ID, free.ID, missing)

		require.NoError(t, err)
		require.Len(t, locked, 2)
		assert.Equal(t, catalog.RoomAvailable, locked[free.ID].Status())
		assert.Equal(t, catalog.RoomOccupied, locked[taken.ID].Status())
		assert.NotContains(t, locked, missing)
	})

	t.Run("no ids skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)

		locked, err := repository.NewRoomRepository(mockQueries, &mockDBTX{}).LockByIDs(ctx, &mockDBTX{})

		require.NoError(t, err)
		assert.Empty(t, locked)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		mockQueries.EXPECT().LockRooms(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("deadlock detected"))

		_, err := repository.NewRoomRepository(mockQueries, &mockDBTX{}).LockByIDs(ctx, &mockDBTX{}, free.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: unknown stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
		row := free.BuildInfra()
		row.Status = "cleaning"
		mockQueries.EXPECT().LockRooms(ctx, gomock.Any(), gomock.Any()).Return([]sqlstore.Rooms{row}, nil)

		_, err := repository.NewRoomRepository(mockQueries, &mockDBTX{}).LockByIDs(ctx, &mockDBTX{}, free.ID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRoomRepository_UpdateState(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	rb := builder.NewRoomBuilder(uuid.New(), uuid.New()).OccupiedBy(bookingID)

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: room state written", affected: 1},
		{name: "error: room not found", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockRoomWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpdateRoomState(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.UpdateRoomStateParams) (int64, error) {
					assert.Equal(t, rb.ID, arg.ID)
					assert.Equal(t, "occupied", arg.Status)
					assert.True(t, arg.CurrentBookingID.Valid)
					assert.Equal(t, [16]byte(bookingID), arg.CurrentBookingID.Bytes)
					return tc.affected, tc.queryErr
				})

			err := repository.NewRoomRepository(mockQueries, mockDB).UpdateState(ctx, mockDB, rb.BuildDomain())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
