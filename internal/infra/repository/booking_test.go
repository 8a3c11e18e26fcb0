//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/infra/repository"
	"travel-booking/internal/infra/sqlstore"
	"travel-booking/tests/common/builder"
	repositorymock "travel-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewTourBookingBuilder(uuid.New()).WithGuests(2)

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, sqlstore.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: tour booking persisted with per-person price",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, tx sqlstore.DBTX) {
				m.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.CreateBookingParams) (sqlstore.Bookings, error) {
						assert.Equal(t, bb.ID, arg.ID)
						assert.Equal(t, "Tour", arg.Type)
						assert.Equal(t, int32(2), arg.NumGuests)
						assert.Equal(t, "booked", arg.Status)
						assert.True(t, arg.PricePerPersonCents.Valid)
						assert.False(t, arg.RoomTypeID.Valid)
						return bb.BuildInfra(), nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, tx sqlstore.DBTX) {
				m.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlstore.Bookings{}, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: referenced user missing",
			setupMock: func(m *repositorymock.MockBookingWriteQueries, tx sqlstore.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "insert or update on table \"bookings\" violates foreign key constraint"}
				m.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlstore.Bookings{}, fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			err := repo.Create(ctx, mockDB, bb.BuildDomain())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	hotelID, rtID, roomID := uuid.New(), uuid.New(), uuid.New()
	bb := builder.NewHotelBookingBuilder(hotelID, rtID).WithStatus(booking.StatusCheckedIn).WithRoom(roomID)

	corrupt := bb.BuildInfra()
	corrupt.Status = "confirmed"

	testCases := []struct {
		name       string
		row        sqlstore.Bookings
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: hotel booking loaded", row: bb.BuildInfra()},
		{name: "error: booking not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("lock timeout"), expectKind: infra.KindDBFailure},
		{name: "error: stored status is not canonical", row: corrupt, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, bb.ID).Return(tc.row, tc.queryErr)

			got, err := repo.FindForUpdate(ctx, mockDB, bb.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bb.ID, got.ID())
			assert.Equal(t, booking.TypeHotel, got.Type())
			assert.Equal(t, booking.StatusCheckedIn, got.Status())
			require.NotNil(t, got.AssignedRoomID())
			assert.Equal(t, roomID, *got.AssignedRoomID())
		})
	}
}

// =============================================================================
// UpdateState Tests
// =============================================================================

func TestBookingRepository_UpdateState(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewTourBookingBuilder(uuid.New()).WithStatus(booking.StatusCancel)

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: state written", affected: 1},
		{name: "error: booking not found", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("database connection error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			mockQueries.EXPECT().UpdateBookingState(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlstore.DBTX, arg sqlstore.UpdateBookingStateParams) (int64, error) {
					assert.Equal(t, bb.ID, arg.ID)
					assert.Equal(t, "cancel", arg.Status)
					assert.False(t, arg.AssignedRoomID.Valid)
					return tc.affected, tc.queryErr
				})

			err := repo.UpdateState(ctx, mockDB, bb.BuildDomain())

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// mockDBTX is a mock implementation of sqlstore.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlstore mock instead.")
}
